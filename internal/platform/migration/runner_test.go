// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/opinion/internal/platform/migration"
)

/*
TestConvertToPgx5DSN rewrites libpq URL schemes only.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/opinion", "pgx5://u:p@db:5432/opinion"},
		{"postgresql://u:p@db/opinion?sslmode=disable", "pgx5://u:p@db/opinion?sslmode=disable"},
		{"pgx5://u:p@db/opinion", "pgx5://u:p@db/opinion"},
		{"host=db user=u dbname=opinion", "host=db user=u dbname=opinion"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ConvertToPgx5DSN(tt.in))
		})
	}
}
