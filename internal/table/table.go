// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table renders extracted companies as a numbered CSV table.
//
// The founders column holds a list literal such as ['Jane Doe', 'John Smith']
// rather than a delimiter-joined string, so consumers can parse the list back
// without guessing at separators. Records end in CRLF, the line terminator
// spreadsheet tools and Python's csv module emit by default.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/company-extract/pkg/types"
)

// Header is the fixed first row of every output table.
var Header = []string{"S.N.", "Company Name", "Founded in", "Founded by"}

// Rows converts companies to table rows. When sortByDate is true the rows are
// ordered by founding date ascending (stable, so ties keep arrival order).
// Serials are assigned 1..N after any sorting.
func Rows(cs []types.Company, sortByDate bool) []types.TableRow {
	ordered := make([]types.Company, len(cs))
	copy(ordered, cs)

	if sortByDate {
		// YYYY-MM-DD sorts correctly as a string.
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].FoundingDate < ordered[j].FoundingDate
		})
	}

	rows := make([]types.TableRow, len(ordered))
	for i, c := range ordered {
		rows[i] = types.TableRow{
			Serial:      i + 1,
			CompanyName: c.Name,
			FoundedIn:   c.FoundingDate,
			FoundedBy:   FormatFounders(c.Founders),
		}
	}
	return rows
}

// FormatFounders renders founders as a list literal: ['Jane Doe', 'John Smith'].
func FormatFounders(founders []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range founders {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(f))
	}
	b.WriteByte(']')
	return b.String()
}

// quote renders s as a single-quoted string literal, switching to double
// quotes when s contains a single quote but no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// Record returns the CSV fields for one row.
func Record(r types.TableRow) []string {
	return []string{strconv.Itoa(r.Serial), r.CompanyName, r.FoundedIn, r.FoundedBy}
}

// Write writes the header followed by rows to w as comma-separated values.
func Write(w io.Writer, rows []types.TableRow) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", r.Serial, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, replacing any existing file.
func WriteFile(path string, rows []types.TableRow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	if err := Write(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
