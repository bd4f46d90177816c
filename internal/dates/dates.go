// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates normalizes partial founding dates to canonical YYYY-MM-DD form.
//
// Normalize is total: every input maps to a valid date string. Precision the
// source did not provide is filled with January and/or the first of the
// month, and text with no recognizable year maps to Unresolved.
package dates

import (
	"regexp"
	"strings"
)

// Unresolved is returned when no year can be recovered from the input.
const Unresolved = "1900-01-01"

var (
	yearOnly  = regexp.MustCompile(`^\d{4}$`)
	yearMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)
	fullDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// embeddedYear matches a 19xx or 20xx token not flanked by other digits.
	embeddedYear = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(?:\D|$)`)
)

// Normalize converts s to YYYY-MM-DD. Rules, first match wins:
//
//	"1999"         -> "1999-01-01"
//	"2005-06"      -> "2005-06-01"
//	"2010-03-15"   -> "2010-03-15"
//	"circa 1987"   -> "1987-01-01"
//	anything else  -> Unresolved
//
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	s = strings.TrimSpace(s)

	switch {
	case yearOnly.MatchString(s):
		return s + "-01-01"
	case yearMonth.MatchString(s):
		return s + "-01"
	case fullDate.MatchString(s):
		return s
	}

	if m := embeddedYear.FindStringSubmatch(s); m != nil {
		return m[1] + "-01-01"
	}
	return Unresolved
}

// IsCanonical reports whether s already has the YYYY-MM-DD shape.
func IsCanonical(s string) bool {
	return fullDate.MatchString(s)
}
