package generator

import (
	"regexp"
	"strings"
)

const fence = "```"

// fenceInfo matches the language tag that may follow an opening fence
var fenceInfo = regexp.MustCompile("^[A-Za-z0-9_-]*[ \\t]*\\r?\\n?")

// SanitizeJSON strips the markup a model may wrap around a JSON object:
// code fences, a byte order mark, and prose before the first '{' or after the last '}'.
// Only the first fenced block is kept. Content without an object is returned trimmed
// so the parse error is reported upstream.
func SanitizeJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "\ufeff"))

	if _, after, found := strings.Cut(cleaned, fence); found {
		block, _, _ := strings.Cut(fenceInfo.ReplaceAllString(after, ""), fence)
		if strings.Contains(block, "{") {
			cleaned = block
		} else {
			cleaned = strings.ReplaceAll(cleaned, fence, "")
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		return cleaned
	}

	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start >= 0 && end > start {
		return cleaned[start : end+1]
	}

	return cleaned
}
