package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paarad/27-backroom-generator/pkg/backroom"
)

// Client wraps calls to the backroom generator backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is returned when the backend answers with a failure envelope
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Health checks that the backend is reachable
func (c *Client) Health(ctx context.Context) error {
	var out HealthResponse
	return c.doJSON(ctx, http.MethodGet, "/api/health", nil, &out)
}

// Generate asks the backend for a new level built from the prompt
func (c *Client) Generate(ctx context.Context, prompt string) (*backroom.Level, error) {
	var out GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/generate", GenerateRequest{Prompt: prompt}, &out); err != nil {
		return nil, err
	}

	if out.Level == nil {
		return nil, fmt.Errorf("no level returned")
	}

	return out.Level, nil
}

// GenerateImage asks the backend for an image of the level and returns its reference
func (c *Client) GenerateImage(ctx context.Context, level *backroom.Level) (string, error) {
	var out GenerateImageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/generate-image", GenerateImageRequest{Level: level}, &out); err != nil {
		return "", err
	}

	if out.ImageURL == "" {
		return "", fmt.Errorf("no image returned")
	}

	return out.ImageURL, nil
}

// SaveLevel stores a level under an optional author name
func (c *Client) SaveLevel(ctx context.Context, level *backroom.Level, authorName string) (backroom.SaveResult, error) {
	var out SaveLevelResponse
	req := SaveLevelRequest{Level: level, AuthorName: authorName}
	if err := c.doJSON(ctx, http.MethodPost, "/api/levels", req, &out); err != nil {
		return backroom.SaveResult{}, err
	}

	return backroom.SaveResult{ID: out.ID, Updated: out.Updated}, nil
}

// ListLevels returns every saved level, newest first
func (c *Client) ListLevels(ctx context.Context) ([]*backroom.Level, error) {
	var out ListLevelsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/levels", nil, &out); err != nil {
		return nil, err
	}

	return out.Levels, nil
}

// GetLevel returns a saved level by id, or nil when the backend does not know it
func (c *Client) GetLevel(ctx context.Context, id string) (*backroom.Level, error) {
	var out GetLevelResponse
	err := c.doJSON(ctx, http.MethodGet, "/api/levels/"+url.PathEscape(id), nil, &out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return out.Level, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Prefer the envelope's message, fall back to the raw body
		b, _ := io.ReadAll(resp.Body)

		var failure Envelope
		message := strings.TrimSpace(string(b))
		if json.Unmarshal(b, &failure) == nil && failure.Error != "" {
			message = failure.Error
		}

		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	return json.NewDecoder(resp.Body).Decode(out)
}
