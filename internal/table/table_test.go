// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/company-extract/pkg/types"
)

func TestFormatFounders(t *testing.T) {
	tests := []struct {
		name     string
		founders []string
		want     string
	}{
		{"two founders", []string{"Jane Doe", "John Smith"}, "['Jane Doe', 'John Smith']"},
		{"empty", nil, "[]"},
		{"apostrophe switches quotes", []string{"Conan O'Brien"}, `["Conan O'Brien"]`},
		{"both quote kinds", []string{`Al "Ace" O'Neil`}, `['Al "Ace" O\'Neil']`},
		{"backslash escaped", []string{`A\B`}, `['A\\B']`},
		{"newline escaped", []string{"A\nB"}, `['A\nB']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFounders(tt.founders))
		})
	}
}

func TestRowsSerialsContiguous(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		for _, sorted := range []bool{false, true} {
			t.Run(fmt.Sprintf("n=%d/sorted=%v", n, sorted), func(t *testing.T) {
				cs := make([]types.Company, n)
				for i := range cs {
					cs[i] = types.Company{
						Name:         fmt.Sprintf("Company %d", i),
						FoundingDate: fmt.Sprintf("%04d-01-01", 2020-i),
					}
				}

				rows := Rows(cs, sorted)
				require.Len(t, rows, n)
				for i, r := range rows {
					assert.Equal(t, i+1, r.Serial)
				}
			})
		}
	}
}

func TestRowsUnsortedKeepsArrivalOrder(t *testing.T) {
	cs := []types.Company{
		{Name: "Later", FoundingDate: "2015-01-01"},
		{Name: "Earlier", FoundingDate: "1990-01-01"},
	}

	rows := Rows(cs, false)
	assert.Equal(t, "Later", rows[0].CompanyName)
	assert.Equal(t, "Earlier", rows[1].CompanyName)
}

func TestRowsSortedByDate(t *testing.T) {
	cs := []types.Company{
		{Name: "C", FoundingDate: "2015-06-01"},
		{Name: "A", FoundingDate: "1990-01-01"},
		{Name: "B1", FoundingDate: "2001-03-15"},
		{Name: "B2", FoundingDate: "2001-03-15"},
		{Name: "Unknown", FoundingDate: "1900-01-01"},
	}

	rows := Rows(cs, true)
	require.Len(t, rows, len(cs))
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].FoundedIn, rows[i].FoundedIn)
	}

	var names []string
	for _, r := range rows {
		names = append(names, r.CompanyName)
	}
	assert.Equal(t, []string{"Unknown", "A", "B1", "B2", "C"}, names, "ties keep arrival order")

	assert.Equal(t, "C", cs[0].Name, "input slice must not be reordered")
}

func TestWrite(t *testing.T) {
	rows := Rows([]types.Company{
		{Name: "Acme Corp", FoundingDate: "2010-01-01", Founders: []string{"Jane Doe", "John Smith"}},
	}, false)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))

	want := "S.N.,Company Name,Founded in,Founded by\r\n" +
		"1,Acme Corp,2010-01-01,\"['Jane Doe', 'John Smith']\"\r\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Rows(nil, true)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{Header}, records)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "company_info.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale,data\n", 10)), 0o644))

	rows := Rows([]types.Company{{Name: "Beta", FoundingDate: "1999-01-01", Founders: []string{}}}, false)
	require.NoError(t, WriteFile(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "S.N.,Company Name,Founded in,Founded by\r\n1,Beta,1999-01-01,[]\r\n", string(data))
}

func TestWriteFileUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "company_info.csv")
	err := WriteFile(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}
