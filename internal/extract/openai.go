// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/pdiddy/company-extract/pkg/types"
)

// OpenAIBackend calls the OpenAI Chat Completions API.
type OpenAIBackend struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIBackend creates an OpenAI backend from cfg.
func NewOpenAIBackend(cfg types.AIConfig) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &OpenAIBackend{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Complete sends prompt and returns the reply text.
func (b *OpenAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := b.chat(ctx, b.request(prompt))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(msg.Content) == "" {
		return "", errors.New("OpenAI API returned empty content")
	}
	return msg.Content, nil
}

// CallTool sends prompt with tool available as a function and returns the
// function calls of the reply.
func (b *OpenAIBackend) CallTool(ctx context.Context, prompt string, tool ToolSpec) (ToolResponse, error) {
	req := b.request(prompt)
	req.Tools = []openai.Tool{{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters: map[string]any{
				"type":       "object",
				"properties": tool.Properties,
				"required":   tool.Required,
			},
		},
	}}

	msg, err := b.chat(ctx, req)
	if err != nil {
		return ToolResponse{}, err
	}

	out := ToolResponse{Text: msg.Content}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "" && tc.Type != openai.ToolTypeFunction {
			continue
		}
		out.Calls = append(out.Calls, ToolCall{
			Name:  tc.Function.Name,
			Input: json.RawMessage(tc.Function.Arguments),
		})
	}
	return out, nil
}

func (b *OpenAIBackend) request(prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: b.maxTokens,
	}
}

func (b *OpenAIBackend) chat(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionMessage, error) {
	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("calling OpenAI API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("no response from OpenAI")
	}
	return resp.Choices[0].Message, nil
}
