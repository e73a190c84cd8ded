package json_utils

import (
	"regexp"
	"strings"
)

var fencedBlockRegexp = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSONArray pulls the JSON array out of a model response: the content of
// a fenced code block when one is present, else the whole trimmed body. The
// result must lexically look like an array; anything else is rejected rather
// than partially recovered.
func ExtractJSONArray(raw string) (string, bool) {
	candidate := strings.TrimSpace(raw)
	if match := fencedBlockRegexp.FindStringSubmatch(candidate); match != nil {
		candidate = strings.TrimSpace(match[1])
	}
	if !strings.HasPrefix(candidate, "[") || !strings.HasSuffix(candidate, "]") {
		return "", false
	}
	return candidate, true
}
