package generator

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures the model parameters used by the generators
type Options struct {
	TextModel   string  `yaml:"text_model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`

	ImageModel   string `yaml:"image_model"`
	ImageSize    string `yaml:"image_size"`
	ImageQuality string `yaml:"image_quality"`
	ImageStyle   string `yaml:"image_style"`

	// PromptsDir holds optional overrides for the level system prompt (level.md) and image style (image.md)
	PromptsDir string `yaml:"prompts_dir"`
}

// DefaultOptions returns the options used when no configuration file is present
func DefaultOptions() Options {
	return Options{
		TextModel:    "gpt-4o",
		Temperature:  0.8,
		MaxTokens:    1000,
		ImageModel:   "dall-e-3",
		ImageSize:    "1024x1024",
		ImageQuality: "standard",
	}
}

// LoadOptions reads generator options from a YAML file on top of the defaults.
// A missing file is not an error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("failed to read generator config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse generator config file: %w", err)
	}

	if err := opts.validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

func (o Options) validate() error {
	switch {
	case o.TextModel == "":
		return errors.New("text_model cannot be empty")
	case o.ImageModel == "":
		return errors.New("image_model cannot be empty")
	case o.ImageSize == "":
		return errors.New("image_size cannot be empty")
	case o.MaxTokens <= 0:
		return fmt.Errorf("max_tokens must be positive, got %d", o.MaxTokens)
	case o.Temperature < 0 || o.Temperature > 2:
		return fmt.Errorf("temperature must be between 0 and 2, got %v", o.Temperature)
	}
	return nil
}
