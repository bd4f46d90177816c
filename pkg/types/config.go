// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionMode selects how the document is presented to the model.
type ExtractionMode string

const (
	// ModeSingleShot sends the whole document once and expects a JSON array.
	ModeSingleShot ExtractionMode = "single-shot"

	// ModeTools sends one paragraph at a time and expects save_company tool calls.
	ModeTools ExtractionMode = "tools"
)

// Provider names accepted by AIConfig.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// AIConfig holds settings for the Generative AI backend.
type AIConfig struct {
	// Provider selects the backend: "anthropic" or "openai".
	Provider string `json:"provider" yaml:"provider"`

	// Model is the AI model identifier (e.g. "claude-haiku-4-5").
	// Empty selects the provider default.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint (used for proxies and tests).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxTokens bounds the length of each model response (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// OutputConfig holds settings for the output table and progress report.
type OutputConfig struct {
	// Path is the CSV file written at the end of a run. Overwritten each run.
	Path string `json:"path" yaml:"path"`

	// SortByDate orders rows by founding date before numbering them.
	SortByDate bool `json:"sort_by_date" yaml:"sort_by_date"`

	// PreviewRows is how many data rows the final summary echoes.
	PreviewRows int `json:"preview_rows" yaml:"preview_rows"`
}

// ExtractionConfig holds settings for a single extraction run.
type ExtractionConfig struct {
	AIConfig `yaml:",inline"`

	// Mode selects single-shot or per-paragraph tool-calling extraction.
	Mode ExtractionMode `json:"mode" yaml:"mode"`

	// MinParagraphLength is the character floor below which paragraphs are
	// skipped in tool-calling mode (default 50).
	MinParagraphLength int `json:"min_paragraph_length" yaml:"min_paragraph_length"`

	Output OutputConfig `json:"output" yaml:"output"`
}

// DefaultExtractionConfig returns the configuration used when no flags,
// environment variables, or config file override anything.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		AIConfig: AIConfig{
			Provider:  ProviderAnthropic,
			MaxTokens: 4096,
		},
		Mode:               ModeSingleShot,
		MinParagraphLength: 50,
		Output: OutputConfig{
			Path:        "company_info.csv",
			PreviewRows: 5,
		},
	}
}
