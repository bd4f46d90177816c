package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/company-extract/internal/extract"
	"github.com/pdiddy/company-extract/internal/secrets"
	"github.com/pdiddy/company-extract/pkg/types"
)

const defaultCacheTTL = 30 * time.Minute

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Extract companies from a text document into a CSV table",
	Long: `Run reads a plain-text document (a file, or stdin when the argument is
omitted or "-"), extracts every company with its founding date and founders,
and writes the deduplicated table to the output path, overwriting it.

In single-shot mode the whole document goes to the model in one request.
In tools mode each paragraph of at least --min-length characters is sent
separately and the model records companies through a save_company tool.

A unit that fails (network error, unparseable reply) is reported and
skipped. The command fails only when the input cannot be read or the
table cannot be written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	f := runCmd.Flags()
	f.String("mode", "", "extraction mode: single-shot or tools (default single-shot)")
	f.StringP("output", "o", "", "output CSV path (default company_info.csv)")
	f.Bool("sort", false, "sort rows by founding date before numbering")
	f.Int("min-length", 0, "minimum paragraph length in tools mode (default 50)")
	f.String("provider", "", "AI provider: anthropic or openai (default anthropic)")
	f.String("model", "", "AI model identifier (default depends on provider)")
	f.Int("max-tokens", 0, "maximum tokens per model response (default 4096)")
	f.Int("preview", 0, "number of rows to echo after the run (default 5)")
	f.Duration("timeout", 0, "overall time limit for the run (default none)")

	bind := map[string]string{
		"mode":       keyMode,
		"output":     keyOutputPath,
		"sort":       keySortByDate,
		"min-length": keyMinLength,
		"provider":   keyProvider,
		"model":      keyModel,
		"max-tokens": keyMaxTokens,
		"preview":    keyPreviewRows,
		"timeout":    keyTimeout,
	}
	for flag, key := range bind {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(runCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, source, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg := loadConfig(viper.GetViper())
	if cfg.APIKey == "" {
		cfg.APIKey = secrets.APIKey(cfg.Provider, loadedSecrets)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("no API key for provider %q: set %s or add a key file under .secrets/",
			providerName(cfg.Provider), keyEnvFor(cfg.Provider))
	}

	backend, err := extract.NewBackend(cfg.AIConfig)
	if err != nil {
		return err
	}
	cached := extract.NewCachedBackend(backend, viper.GetDuration(keyCacheTTL))

	strategy, err := extract.NewStrategy(cfg, cached)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if timeout := viper.GetDuration(keyTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Extracting from %s with %s (%s)\n", source, providerName(cfg.Provider), strategy.Name())

	_, err = extract.Run(ctx, strategy, text, cfg.Output, out)
	return err
}

// readInput returns the document text and a label for progress output.
func readInput(args []string, stdin io.Reader) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), args[0], nil
}

func providerName(p string) string {
	if p == "" {
		return types.ProviderAnthropic
	}
	return p
}

func keyEnvFor(provider string) string {
	if strings.EqualFold(strings.TrimSpace(provider), types.ProviderOpenAI) {
		return secrets.OpenAIKeyEnv
	}
	return secrets.AnthropicKeyEnv
}
