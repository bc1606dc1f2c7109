package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// promptExtensions are tried in order when resolving a prompt by name
var promptExtensions = []string{".md", ".txt"}

// LoadPrompt loads a named prompt from dir, trying the .md file before the .txt one
func LoadPrompt(dir, name string) (string, error) {
	for _, ext := range promptExtensions {
		path := filepath.Join(dir, name+ext)

		content, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read prompt %s: %w", path, err)
		}

		prompt := strings.TrimSpace(string(content))
		if prompt == "" {
			return "", fmt.Errorf("prompt file %s is empty", path)
		}
		return prompt, nil
	}

	return "", fmt.Errorf("prompt %q not found in %s", name, dir)
}

// LoadPromptWithFallback loads a named prompt from dir, returning fallback when it cannot be read
func LoadPromptWithFallback(dir, name, fallback string) string {
	if dir == "" {
		return fallback
	}
	if content, err := LoadPrompt(dir, name); err == nil {
		return content
	}
	return fallback
}
