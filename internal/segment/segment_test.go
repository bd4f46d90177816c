// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	longA = "Acme Corp was founded in 2010 by Jane Doe and John Smith in a small garage."
	longB = "Beta Industries started operations in 1999 under the direction of Ann Lee."
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		minLen int
		want   []string
	}{
		{
			name:   "length floor drops short paragraph",
			text:   longA + "\n\nToo short.\n\n" + longB,
			minLen: DefaultMinLength,
			want:   []string{longA, longB},
		},
		{
			name:   "whitespace-only separator lines",
			text:   longA + "\n   \t\n" + longB,
			minLen: DefaultMinLength,
			want:   []string{longA, longB},
		},
		{
			name:   "crlf line endings",
			text:   longA + "\r\n\r\n" + longB + "\r\n",
			minLen: DefaultMinLength,
			want:   []string{longA, longB},
		},
		{
			name:   "single newline does not split",
			text:   longA + "\n" + longB,
			minLen: DefaultMinLength,
			want:   []string{longA + "\n" + longB},
		},
		{
			name:   "surrounding whitespace trimmed",
			text:   "\n\n   " + longA + "   \n\n\n\n",
			minLen: DefaultMinLength,
			want:   []string{longA},
		},
		{
			name:   "floor disabled keeps short fragments",
			text:   "one\n\ntwo",
			minLen: 0,
			want:   []string{"one", "two"},
		},
		{
			name:   "empty input",
			text:   "",
			minLen: DefaultMinLength,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paragraphs(tt.text, tt.minLen))
		})
	}
}

func TestParagraphsCountsRunes(t *testing.T) {
	// 50 two-byte runes: passes a 50-character floor, fails a 51 one.
	para := strings.Repeat("é", 50)

	assert.Len(t, Paragraphs(para, 50), 1)
	assert.Empty(t, Paragraphs(para, 51))
}
