package json_utils

import "testing"

func TestExtractJSONArrayFenced(t *testing.T) {
	raw := "Sure, here is the script:\n```json\n[{\"scene_number\": 1}]\n```\nLet me know if you need changes."
	got, ok := ExtractJSONArray(raw)
	if !ok {
		t.Fatal("ExtractJSONArray() ok = false, want fenced payload")
	}
	if got != `[{"scene_number": 1}]` {
		t.Fatalf("ExtractJSONArray() = %q", got)
	}
}

func TestExtractJSONArrayUnlabeledFence(t *testing.T) {
	got, ok := ExtractJSONArray("```\n[1, 2]\n```")
	if !ok || got != "[1, 2]" {
		t.Fatalf("ExtractJSONArray() = %q, %v", got, ok)
	}
}

func TestExtractJSONArrayBareBody(t *testing.T) {
	got, ok := ExtractJSONArray("  [1, 2, 3]\n")
	if !ok || got != "[1, 2, 3]" {
		t.Fatalf("ExtractJSONArray() = %q, %v", got, ok)
	}
}

func TestExtractJSONArrayRejectsNonArrays(t *testing.T) {
	cases := []string{
		"no json here",
		`{"scene_number": 1}`,
		"```json\n{\"a\": 1}\n```",
		"",
	}
	for _, raw := range cases {
		if got, ok := ExtractJSONArray(raw); ok {
			t.Errorf("ExtractJSONArray(%q) = %q, want rejection", raw, got)
		}
	}
}
