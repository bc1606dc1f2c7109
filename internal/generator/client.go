package generator

import (
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// NewClient creates the process-wide OpenAI client shared by both generators.
// Client-side retries are disabled so each invocation makes exactly one call.
func NewClient(apiKey, baseURL string) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return openai.NewClient(opts...)
}
