package generator

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/openai/openai-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpenAI serves canned responses for a single API path and records the requests it receives
type fakeOpenAI struct {
	mu       sync.Mutex
	calls    int
	requests []map[string]any

	status int
	body   string
}

func newFakeOpenAI(t *testing.T, path string, status int, body string) (*fakeOpenAI, openai.Client) {
	t.Helper()

	fake := &fakeOpenAI{status: status, body: body}
	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var req map[string]any
		assert.NoError(t, json.Unmarshal(data, &req))

		fake.mu.Lock()
		fake.calls++
		fake.requests = append(fake.requests, req)
		fake.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fake.status)
		_, _ = w.Write([]byte(fake.body))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return fake, NewClient("sk-test", srv.URL)
}

func (f *fakeOpenAI) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeOpenAI) LastRequest() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

// chatResponse builds a chat completion payload whose first choice carries content
func chatResponse(t *testing.T, content string) string {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	})
	require.NoError(t, err)
	return string(body)
}

const apiError = `{"error": {"message": "upstream exploded", "type": "server_error", "code": null, "param": null}}`
