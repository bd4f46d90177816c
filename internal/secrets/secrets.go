// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files and
// from a dotenv file. In the directory, each file is one secret: the
// filename is the key name and the trimmed contents are the value.
//
// Supported key files: anthropic-api-key, openai-api-key.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Key file names and the environment variables they stand in for.
const (
	AnthropicKeyFile = "anthropic-api-key"
	OpenAIKeyFile    = "openai-api-key"

	AnthropicKeyEnv = "ANTHROPIC_API_KEY"
	OpenAIKeyEnv    = "OPENAI_API_KEY"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables already set are left alone. It reports whether the
// file existed; a missing file is not an error.
func LoadEnvFile(path string) (bool, error) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("loading env file %s: %w", path, err)
	}
	return true, nil
}

// APIKey returns the key for provider from the environment, then from the
// loaded key files. It returns "" when neither has one.
func APIKey(provider string, loaded map[string]string) string {
	env, file := AnthropicKeyEnv, AnthropicKeyFile
	if strings.EqualFold(provider, "openai") {
		env, file = OpenAIKeyEnv, OpenAIKeyFile
	}
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	return loaded[file]
}
