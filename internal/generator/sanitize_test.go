package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeJSON(t *testing.T) {
	const object = `{"name": "Level 1"}`

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain object", raw: object, want: object},
		{name: "surrounding whitespace", raw: "\n\n  " + object + "  \n", want: object},
		{name: "json fence", raw: "```json\n" + object + "\n```", want: object},
		{name: "bare fence", raw: "```\n" + object + "\n```", want: object},
		{name: "upper case language tag", raw: "```JSON\n" + object + "\n```", want: object},
		{name: "fence on one line", raw: "```json" + object + "```", want: object},
		{name: "windows line endings", raw: "```json\r\n" + object + "\r\n```", want: object},
		{name: "missing closing fence", raw: "```json\n" + object, want: object},
		{name: "leading prose", raw: "Here is your level:\n" + object, want: object},
		{name: "prose around a fenced block", raw: "Sure!\n```json\n" + object + "\n```\nEnjoy the dark.", want: object},
		{name: "prose with a brace after the fence", raw: "```json\n" + object + "\n```\nEnjoy :}", want: object},
		{name: "second fenced block ignored", raw: "```json\n" + object + "\n```\nOr:\n```json\n{\"name\": \"Level 2\"}\n```", want: object},
		{name: "stray fence after object", raw: object + "\n```", want: object},
		{name: "byte order mark", raw: "\ufeff" + object, want: object},
		{name: "nested braces kept whole", raw: "```json\n{\"a\": {\"b\": 1}}\n```", want: `{"a": {"b": 1}}`},
		{name: "no object at all", raw: "  I cannot help with that.  ", want: "I cannot help with that."},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeJSON(tt.raw))
		})
	}
}

func TestSanitizeJSON_ProducesParseableOutput(t *testing.T) {
	raw := "```json\n{\n  \"levelNumber\": 173,\n  \"name\": \"Level 173: The Breathing Hall\",\n  \"hazards\": [\"a\", \"b\"]\n}\n```"

	var out map[string]any
	assert.NoError(t, json.Unmarshal([]byte(SanitizeJSON(raw)), &out))
	assert.Equal(t, "Level 173: The Breathing Hall", out["name"])
}
