// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/company-extract/internal/segment"
	"github.com/pdiddy/company-extract/pkg/types"
)

// NewStrategy returns the strategy selected by cfg.Mode.
func NewStrategy(cfg types.ExtractionConfig, backend Backend) (Strategy, error) {
	switch cfg.Mode {
	case types.ModeSingleShot, "":
		return NewSingleShot(backend), nil
	case types.ModeTools:
		return NewToolCalling(backend, cfg.MinParagraphLength), nil
	default:
		return nil, fmt.Errorf("unknown extraction mode %q (supported: %s, %s)", cfg.Mode, types.ModeSingleShot, types.ModeTools)
	}
}

// SingleShot sends the whole document in one prompt and expects a JSON
// array of companies back, optionally inside a fenced code block.
type SingleShot struct {
	backend Backend
}

// NewSingleShot creates a single-shot strategy.
func NewSingleShot(backend Backend) *SingleShot {
	return &SingleShot{backend: backend}
}

// Name returns "single-shot".
func (s *SingleShot) Name() string {
	return string(types.ModeSingleShot)
}

// Units returns the trimmed document as the only unit, or none if it is blank.
func (s *SingleShot) Units(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return []string{text}
}

// Extract sends unit to the model and parses the JSON array it returns.
func (s *SingleShot) Extract(ctx context.Context, unit string) Outcome {
	prompt, err := renderPrompt(singleShotPromptTmpl, unit)
	if err != nil {
		return Outcome{Diagnostic: fmt.Sprintf("rendering prompt: %v", err)}
	}

	raw, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		return Outcome{Diagnostic: fmt.Sprintf("model call failed: %v", err)}
	}

	candidates, err := ParseCandidates(raw)
	if err != nil {
		return Outcome{Diagnostic: fmt.Sprintf("failed to parse JSON output (%v):\n%s", err, raw)}
	}
	return accept(candidates)
}

// ToolCalling sends one paragraph per request and collects the arguments of
// every save_company call the model makes. A reply without tool calls means
// the paragraph names no companies.
type ToolCalling struct {
	backend Backend
	minLen  int
}

// NewToolCalling creates a tool-calling strategy. Paragraphs shorter than
// minLen characters are skipped.
func NewToolCalling(backend Backend, minLen int) *ToolCalling {
	return &ToolCalling{backend: backend, minLen: minLen}
}

// Name returns "tools".
func (s *ToolCalling) Name() string {
	return string(types.ModeTools)
}

// Units splits text into paragraphs long enough to hold a founding fact.
func (s *ToolCalling) Units(text string) []string {
	return segment.Paragraphs(text, s.minLen)
}

// Extract offers the save_company tool to the model for one paragraph.
func (s *ToolCalling) Extract(ctx context.Context, unit string) Outcome {
	prompt, err := renderPrompt(toolPromptTmpl, unit)
	if err != nil {
		return Outcome{Diagnostic: fmt.Sprintf("rendering prompt: %v", err)}
	}

	resp, err := s.backend.CallTool(ctx, prompt, SaveCompanyTool)
	if err != nil {
		return Outcome{Diagnostic: fmt.Sprintf("model call failed: %v", err)}
	}

	var candidates []types.Candidate
	var problems []string
	for i, call := range resp.Calls {
		if call.Name != SaveCompanyTool.Name {
			continue
		}
		var c types.Candidate
		if err := json.Unmarshal(call.Input, &c); err != nil {
			problems = append(problems, fmt.Sprintf("call %d: invalid arguments %s: %v", i+1, string(call.Input), err))
			continue
		}
		candidates = append(candidates, c)
	}

	out := accept(candidates)
	if len(problems) > 0 {
		out.Diagnostic = strings.Join(problems, "; ")
	}
	return out
}
