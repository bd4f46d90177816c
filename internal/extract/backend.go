// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pdiddy/company-extract/pkg/types"
)

// NewBackend creates the backend named by cfg.Provider. An empty provider
// selects Anthropic.
func NewBackend(cfg types.AIConfig) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", types.ProviderAnthropic, "claude":
		return NewClaudeBackend(cfg)
	case types.ProviderOpenAI:
		return NewOpenAIBackend(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider %q (want %s or %s)",
			cfg.Provider, types.ProviderAnthropic, types.ProviderOpenAI)
	}
}

// CachedBackend memoizes successful replies from another backend, keyed on
// the request kind, tool name, and prompt. Failed calls are not cached, so a
// repeated unit gets a fresh attempt.
type CachedBackend struct {
	next  Backend
	cache *gocache.Cache
}

// NewCachedBackend wraps next with an in-memory cache whose entries expire
// after ttl.
func NewCachedBackend(next Backend, ttl time.Duration) *CachedBackend {
	return &CachedBackend{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Complete returns the cached reply for prompt or asks the wrapped backend.
func (c *CachedBackend) Complete(ctx context.Context, prompt string) (string, error) {
	key := cacheKey("complete", "", prompt)
	if v, ok := c.cache.Get(key); ok {
		return v.(string), nil
	}

	text, err := c.next.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	c.cache.Set(key, text, gocache.DefaultExpiration)
	return text, nil
}

// CallTool returns the cached tool reply for prompt or asks the wrapped backend.
func (c *CachedBackend) CallTool(ctx context.Context, prompt string, tool ToolSpec) (ToolResponse, error) {
	key := cacheKey("tool", tool.Name, prompt)
	if v, ok := c.cache.Get(key); ok {
		return v.(ToolResponse), nil
	}

	resp, err := c.next.CallTool(ctx, prompt, tool)
	if err != nil {
		return ToolResponse{}, err
	}
	c.cache.Set(key, resp, gocache.DefaultExpiration)
	return resp, nil
}

func cacheKey(kind, tool, prompt string) string {
	sum := sha256.Sum256([]byte(kind + "\x00" + tool + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}
