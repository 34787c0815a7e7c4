// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert turns HTML form values into typed fields.

Conversions are fault-tolerant: a malformed number becomes 0 and is then
rejected by entity validation, which reports it next to the form field.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty, cannot be parsed, or does not fit
// the 32-bit INTEGER columns it is stored in.
func ToInt(s string) int {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return int(v)
}

// ToOptionalString trims s and returns nil when nothing is left.
func ToOptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
