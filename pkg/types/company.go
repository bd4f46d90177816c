// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Company is one extracted company record. FoundingDate holds a canonical
// YYYY-MM-DD string once the record has passed through date normalization.
type Company struct {
	// Name is the company name exactly as first seen in the source text.
	Name string `json:"company_name" yaml:"company_name"`

	// FoundingDate is the founding date (YYYY-MM-DD after normalization).
	FoundingDate string `json:"founding_date" yaml:"founding_date"`

	// Founders lists founder names in the order the model reported them.
	Founders []string `json:"founders" yaml:"founders"`
}

// Candidate is a company record as emitted by the model, before validation.
// Pointer fields distinguish a missing key from an empty value.
type Candidate struct {
	Name         *string   `json:"company_name"`
	FoundingDate *string   `json:"founding_date"`
	Founders     *[]string `json:"founders"`
}

// UnmarshalJSON decodes a candidate object without checking value types.
// A present key always sets its field: numbers and other non-string scalars
// keep their JSON text, null becomes an empty value, and founders may be an
// array, a single string, or null. Only input that is not a JSON object is
// an error.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*c = Candidate{}
	if raw, ok := fields["company_name"]; ok {
		s := scalarString(raw)
		c.Name = &s
	}
	if raw, ok := fields["founding_date"]; ok {
		s := scalarString(raw)
		c.FoundingDate = &s
	}
	if raw, ok := fields["founders"]; ok {
		f := stringList(raw)
		c.Founders = &f
	}
	return nil
}

// scalarString renders a JSON value as text. Strings are unquoted, null is
// empty, and anything else keeps its compact JSON form.
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || string(raw) == "null":
		return ""
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func stringList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}
	}
	if raw[0] != '[' {
		return []string{scalarString(raw)}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return []string{scalarString(raw)}
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		out = append(out, scalarString(e))
	}
	return out
}

// Company converts the candidate into a Company. It reports false when any
// of the three keys is missing or the name is blank. The name is kept as
// given; founder names are trimmed and blank entries discarded.
func (c Candidate) Company() (Company, bool) {
	if c.Name == nil || c.FoundingDate == nil || c.Founders == nil {
		return Company{}, false
	}
	if strings.TrimSpace(*c.Name) == "" {
		return Company{}, false
	}

	founders := make([]string, 0, len(*c.Founders))
	for _, f := range *c.Founders {
		if f = strings.TrimSpace(f); f != "" {
			founders = append(founders, f)
		}
	}

	return Company{
		Name:         *c.Name,
		FoundingDate: strings.TrimSpace(*c.FoundingDate),
		Founders:     founders,
	}, true
}

// TableRow is one data row of the output table. Serials run 1..N with no gaps.
type TableRow struct {
	Serial      int    `json:"serial" yaml:"serial"`
	CompanyName string `json:"company_name" yaml:"company_name"`
	FoundedIn   string `json:"founded_in" yaml:"founded_in"`
	FoundedBy   string `json:"founded_by" yaml:"founded_by"`
}
