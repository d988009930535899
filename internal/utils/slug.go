// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe slug from s.
//
// Accents are folded to their base letters (NFKD, combining marks removed),
// letters are lowercased and every run of characters outside [a-z0-9] is
// collapsed into a single '-'. Leading and trailing separators are trimmed.
// The result is empty when s contains no ASCII letters or digits.
//
// Example:
//
//	utils.Slugify("Jordan 360°: Petra & Wadi Rum") // "jordan-360-petra-wadi-rum"
func Slugify(s string) string {
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(folder, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSeparator := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSeparator && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSeparator = false
			b.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}

	return b.String()
}
