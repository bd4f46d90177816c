// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate accumulates extracted companies across extraction units
// and removes duplicates by normalized company name.
package aggregate

import (
	"strings"

	"github.com/pdiddy/company-extract/pkg/types"
)

// Key returns the deduplication key for a company name: lower-cased and
// trimmed.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Set is an ordered, deduplicated collection of companies. The first record
// seen for a key wins; later records with the same key are discarded without
// merging their fields. The zero value is not usable; call NewSet.
type Set struct {
	seen      map[string]bool
	companies []types.Company
	discarded int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[string]bool)}
}

// Add appends c unless a company with the same key was already added.
// It reports whether c was accepted.
func (s *Set) Add(c types.Company) bool {
	key := Key(c.Name)
	if s.seen[key] {
		s.discarded++
		return false
	}
	s.seen[key] = true
	s.companies = append(s.companies, c)
	return true
}

// AddAll adds each company in order and returns how many were accepted.
func (s *Set) AddAll(cs []types.Company) int {
	accepted := 0
	for _, c := range cs {
		if s.Add(c) {
			accepted++
		}
	}
	return accepted
}

// Companies returns the accepted companies in arrival order. The returned
// slice is a copy.
func (s *Set) Companies() []types.Company {
	out := make([]types.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// Len returns the number of accepted companies.
func (s *Set) Len() int {
	return len(s.companies)
}

// Discarded returns the number of duplicates rejected so far.
func (s *Set) Discarded() int {
	return s.discarded
}
