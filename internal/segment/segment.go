// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits a narrative document into paragraph-sized
// extraction units.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMinLength is the character floor below which a paragraph is
// considered too short to hold an extractable fact.
const DefaultMinLength = 50

// blankLine matches a paragraph break: a newline, optional whitespace on
// an otherwise empty line, and another newline.
var blankLine = regexp.MustCompile(`\r?\n[ \t\f\v]*\r?\n`)

// Paragraphs splits text on blank lines, trims each fragment, and drops
// empty fragments and fragments shorter than minLen characters. A minLen
// of zero or less keeps every non-empty fragment. Paragraphs are returned
// in document order.
func Paragraphs(text string, minLen int) []string {
	var units []string
	for _, frag := range blankLine.Split(text, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if minLen > 0 && utf8.RuneCountInString(frag) < minLen {
			continue
		}
		units = append(units, frag)
	}
	return units
}
