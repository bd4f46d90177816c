// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns narrative text into company records by calling a
// Generative AI backend, then deduplicates, normalizes, and tabulates them.
//
// Two strategies share one contract, "text unit in, companies out":
// SingleShot sends the whole document and parses a JSON array from the
// reply; ToolCalling sends one paragraph at a time and collects the
// arguments of save_company tool calls. Neither strategy returns an error
// from Extract: transport and parse failures degrade the unit to zero
// records plus a diagnostic, and Run carries on with the next unit.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/company-extract/internal/aggregate"
	"github.com/pdiddy/company-extract/internal/dates"
	"github.com/pdiddy/company-extract/internal/table"
	"github.com/pdiddy/company-extract/pkg/types"
)

// Backend abstracts the Generative AI API so tests can supply a fake.
// Complete returns the model's free-text reply; CallTool offers the model a
// single tool and returns every call it made.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CallTool(ctx context.Context, prompt string, tool ToolSpec) (ToolResponse, error)
}

// ToolSpec describes a tool offered to the model. Properties is the JSON
// schema "properties" object for the tool input.
type ToolSpec struct {
	Name        string
	Description string
	Properties  map[string]any
	Required    []string
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	Name  string
	Input json.RawMessage
}

// ToolResponse holds the tool calls and any accompanying text from one
// model reply.
type ToolResponse struct {
	Calls []ToolCall
	Text  string
}

// Strategy is one way of presenting a document to the model.
type Strategy interface {
	// Name identifies the strategy in progress output.
	Name() string

	// Units splits the document into extraction units in document order.
	Units(text string) []string

	// Extract runs one unit through the model. It never fails; problems
	// are reported in Outcome.Diagnostic.
	Extract(ctx context.Context, unit string) Outcome
}

// Outcome is the result of extracting one unit.
type Outcome struct {
	// Companies holds the records that passed the key-presence check, in
	// the order the model produced them.
	Companies []types.Company

	// Dropped counts candidates rejected for missing fields.
	Dropped int

	// Diagnostic is empty when the unit completed cleanly.
	Diagnostic string
}

// accept validates candidates into an Outcome.
func accept(candidates []types.Candidate) Outcome {
	var out Outcome
	for _, c := range candidates {
		company, ok := c.Company()
		if !ok {
			out.Dropped++
			continue
		}
		out.Companies = append(out.Companies, company)
	}
	return out
}

// RunSummary holds counts from one extraction run.
type RunSummary struct {
	Units      int
	Failed     int
	Extracted  int
	Dropped    int
	Duplicates int
	Rows       int
}

// Run extracts companies from text with strategy, one unit at a time in
// document order, and writes the resulting table to cfg.Path. Progress and
// diagnostics go to w. The only error Run returns is a failure to write the
// output table; unit failures are reported and skipped. If ctx is cancelled
// between units, the remaining units are skipped and the table is written
// from what was collected.
func Run(ctx context.Context, strategy Strategy, text string, cfg types.OutputConfig, w io.Writer) (RunSummary, error) {
	units := strategy.Units(text)
	summary := RunSummary{Units: len(units)}

	fmt.Fprintf(w, "%d extraction units (%s)\n", len(units), strategy.Name())

	set := aggregate.NewSet()
	for i, unit := range units {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(w, "stopping after %d/%d units: %v\n", i, len(units), err)
			break
		}

		out := strategy.Extract(ctx, unit)
		summary.Extracted += len(out.Companies)
		summary.Dropped += out.Dropped

		if out.Diagnostic != "" {
			summary.Failed++
			fmt.Fprintf(w, "unit %d/%d: %s\n", i+1, len(units), out.Diagnostic)
		}

		accepted := set.AddAll(out.Companies)
		switch {
		case len(out.Companies) == 0 && out.Diagnostic == "":
			fmt.Fprintf(w, "unit %d/%d: no companies found\n", i+1, len(units))
		case len(out.Companies) > 0:
			fmt.Fprintf(w, "unit %d/%d: %d companies (%d new)\n", i+1, len(units), len(out.Companies), accepted)
		}
	}
	summary.Duplicates = set.Discarded()

	companies := set.Companies()
	for i := range companies {
		companies[i].FoundingDate = dates.Normalize(companies[i].FoundingDate)
	}

	rows := table.Rows(companies, cfg.SortByDate)
	if err := table.WriteFile(cfg.Path, rows); err != nil {
		return summary, fmt.Errorf("writing output table: %w", err)
	}
	summary.Rows = len(rows)

	fmt.Fprintf(w, "\nunits: %d, failed: %d, extracted: %d, duplicates: %d, dropped: %d\n",
		summary.Units, summary.Failed, summary.Extracted, summary.Duplicates, summary.Dropped)
	fmt.Fprintf(w, "wrote %d rows to %s\n", summary.Rows, cfg.Path)
	writePreview(w, rows, cfg.PreviewRows)

	return summary, nil
}

// writePreview echoes the header and the first n rows.
func writePreview(w io.Writer, rows []types.TableRow, n int) {
	if n <= 0 || len(rows) == 0 {
		return
	}
	if n > len(rows) {
		n = len(rows)
	}

	fmt.Fprintf(w, "\n%s\n", strings.Join(table.Header, " | "))
	for _, r := range rows[:n] {
		fmt.Fprintf(w, "%s\n", strings.Join(table.Record(r), " | "))
	}
	if n < len(rows) {
		fmt.Fprintf(w, "... %d more\n", len(rows)-n)
	}
}
