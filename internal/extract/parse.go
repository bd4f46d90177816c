// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/pdiddy/company-extract/pkg/types"
)

// fencedBlock captures the body of the first ``` or ```json code block.
var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?[ \t]*\r?\n?(.*?)```")

// StripFences returns the contents of the first fenced code block in s, or
// s itself when there is none. The result is trimmed.
func StripFences(s string) string {
	if m := fencedBlock.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

// ParseCandidates decodes a single-shot reply into candidates. The reply may
// be bare JSON or fenced, and may be an array or an object holding the array
// under "companies". Payloads that start like JSON but do not decode get one
// repair pass. Elements that are not objects yield empty candidates, which
// fail validation downstream.
func ParseCandidates(raw string) ([]types.Candidate, error) {
	payload := StripFences(raw)
	if payload == "" {
		return nil, errors.New("empty response")
	}

	candidates, err := decodeCandidates(payload)
	if err == nil {
		return candidates, nil
	}
	if payload[0] != '[' && payload[0] != '{' {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	repaired, repairErr := jsonrepair.JSONRepair(payload)
	if repairErr != nil {
		return nil, fmt.Errorf("decoding response: %w (repair failed: %v)", err, repairErr)
	}
	candidates, err = decodeCandidates(repaired)
	if err != nil {
		return nil, fmt.Errorf("decoding repaired response: %w", err)
	}
	return candidates, nil
}

func decodeCandidates(payload string) ([]types.Candidate, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elems); err != nil {
		var wrapped struct {
			Companies *[]json.RawMessage `json:"companies"`
		}
		if werr := json.Unmarshal([]byte(payload), &wrapped); werr != nil || wrapped.Companies == nil {
			return nil, err
		}
		elems = *wrapped.Companies
	}

	candidates := make([]types.Candidate, len(elems))
	for i, e := range elems {
		var c types.Candidate
		if err := json.Unmarshal(e, &c); err != nil {
			continue
		}
		candidates[i] = c
	}
	return candidates, nil
}
