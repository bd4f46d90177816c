// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pdiddy/company-extract/pkg/types"
)

// defaultClaudeModel is used when AIConfig.Model is empty.
const defaultClaudeModel = anthropic.ModelClaudeSonnet4_20250514

// AnthropicMessager is the part of the Anthropic client the backend uses.
// Tests substitute a fake.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// ClaudeBackend calls the Claude Messages API.
type ClaudeBackend struct {
	messages  AnthropicMessager
	model     anthropic.Model
	maxTokens int64
}

// NewClaudeBackend creates a Claude backend from cfg. SDK retries are
// disabled so each unit costs exactly one request.
func NewClaudeBackend(cfg types.AIConfig) (*ClaudeBackend, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return NewClaudeBackendWithMessager(&client.Messages, cfg), nil
}

// NewClaudeBackendWithMessager creates a Claude backend around an existing
// messager.
func NewClaudeBackendWithMessager(messages AnthropicMessager, cfg types.AIConfig) *ClaudeBackend {
	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = defaultClaudeModel
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &ClaudeBackend{messages: messages, model: model, maxTokens: maxTokens}
}

// Complete sends prompt and returns the concatenated text blocks of the reply.
func (b *ClaudeBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.messages.New(ctx, b.params(prompt))
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("Claude API returned no text content")
	}
	return sb.String(), nil
}

// CallTool sends prompt with tool available and returns the tool_use blocks
// of the reply.
func (b *ClaudeBackend) CallTool(ctx context.Context, prompt string, tool ToolSpec) (ToolResponse, error) {
	params := b.params(prompt)
	params.Tools = []anthropic.ToolUnionParam{{
		OfTool: &anthropic.ToolParam{
			Name:        tool.Name,
			Description: anthropic.String(tool.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: tool.Properties,
				Required:   tool.Required,
			},
		},
	}}

	resp, err := b.messages.New(ctx, params)
	if err != nil {
		return ToolResponse{}, fmt.Errorf("calling Claude API: %w", err)
	}

	var out ToolResponse
	var text strings.Builder
	for _, block := range resp.Content {
		switch block.Type {
		case "tool_use":
			out.Calls = append(out.Calls, ToolCall{Name: block.Name, Input: block.Input})
		case "text":
			text.WriteString(block.Text)
		}
	}
	out.Text = text.String()
	return out, nil
}

func (b *ClaudeBackend) params(prompt string) anthropic.MessageNewParams {
	return anthropic.MessageNewParams{
		Model:       b.model,
		MaxTokens:   b.maxTokens,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	}
}
