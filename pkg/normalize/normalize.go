// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalizes user-entered labels.
//
// Mood labels are matched byte for byte, so "café" typed with a combining
// accent must be stored and looked up in the same form as the precomposed one.
// Case is preserved.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Label returns s in NFC with surrounding whitespace trimmed and inner
// whitespace runs collapsed to one space.
func Label(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
