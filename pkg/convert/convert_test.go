// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/opinion/pkg/convert"
)

/*
TestToInt treats malformed input as zero.
*/
func TestToInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2016", 2016},
		{" 7 ", 7},
		{"", 0},
		{"twenty", 0},
		{"2147483647", 2147483647},
		{"9999999999", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convert.ToInt(tt.input), tt.input)
	}
}

/*
TestToOptionalString maps blank form fields to nil.
*/
func TestToOptionalString(t *testing.T) {
	assert.Nil(t, convert.ToOptionalString("   "))
	assert.Equal(t, "Thriller", *convert.ToOptionalString(" Thriller "))
}
