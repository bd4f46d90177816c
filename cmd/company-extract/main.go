// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the company-extract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/company-extract/internal/secrets"
	"github.com/pdiddy/company-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the company-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "company-extract",
	Short: "Extract company founding facts from narrative text",
	Long: `company-extract reads a plain-text document, asks a Generative AI model
for every company it mentions along with its founding date and founders,
and writes the deduplicated results to a CSV table.

Credentials come from ANTHROPIC_API_KEY or OPENAI_API_KEY, a .env file in
the working directory, or key files in .secrets/.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if found, err := secrets.LoadEnvFile(".env"); err != nil {
			return err
		} else if found {
			fmt.Fprintln(os.Stderr, "Loaded environment from .env")
		}

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./company-extract.yaml or ~/.config/company-extract/config.yaml)")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("company-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "company-extract"))
		}
	}

	viper.SetEnvPrefix("COMPANY_EXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config file %s: %v\n", cfgFile, err)
	}
}

// Configuration keys. Nested keys follow the YAML layout of
// types.ExtractionConfig.
const (
	keyProvider    = "provider"
	keyModel       = "model"
	keyAPIKey      = "api_key"
	keyBaseURL     = "base_url"
	keyMaxTokens   = "max_tokens"
	keyMode        = "mode"
	keyMinLength   = "min_paragraph_length"
	keyOutputPath  = "output.path"
	keySortByDate  = "output.sort_by_date"
	keyPreviewRows = "output.preview_rows"
	keyCacheTTL    = "cache_ttl"
	keyTimeout     = "timeout"
)

// setDefaults registers the built-in configuration so a run with no flags,
// environment, or config file behaves the same every time.
func setDefaults(v *viper.Viper) {
	d := types.DefaultExtractionConfig()
	v.SetDefault(keyProvider, d.Provider)
	v.SetDefault(keyModel, d.Model)
	v.SetDefault(keyMaxTokens, d.MaxTokens)
	v.SetDefault(keyMode, string(d.Mode))
	v.SetDefault(keyMinLength, d.MinParagraphLength)
	v.SetDefault(keyOutputPath, d.Output.Path)
	v.SetDefault(keySortByDate, d.Output.SortByDate)
	v.SetDefault(keyPreviewRows, d.Output.PreviewRows)
	v.SetDefault(keyCacheTTL, defaultCacheTTL)
	v.SetDefault(keyTimeout, 0)
}

// loadConfig assembles the effective extraction configuration from v.
func loadConfig(v *viper.Viper) types.ExtractionConfig {
	return types.ExtractionConfig{
		AIConfig: types.AIConfig{
			Provider:  v.GetString(keyProvider),
			Model:     v.GetString(keyModel),
			APIKey:    v.GetString(keyAPIKey),
			BaseURL:   v.GetString(keyBaseURL),
			MaxTokens: v.GetInt(keyMaxTokens),
		},
		Mode:               types.ExtractionMode(v.GetString(keyMode)),
		MinParagraphLength: v.GetInt(keyMinLength),
		Output: types.OutputConfig{
			Path:        v.GetString(keyOutputPath),
			SortByDate:  v.GetBool(keySortByDate),
			PreviewRows: v.GetInt(keyPreviewRows),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
