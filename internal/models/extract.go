// internal/models/extract.go
package models

import (
	"encoding/json"
	"regexp"
	"strings"
)

var codeFenceRegex = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

// ExtractObject locates and parses the JSON object embedded in raw completion
// text. Models wrap JSON in prose or markdown fences despite instructions not
// to, so the candidate span is the fence interior when a fence is present,
// then bounded by the first "{" and the last "}". Nothing beyond that
// bounding is repaired: a syntax error inside the span is a legitimate
// failure, not something to paper over.
func ExtractObject(raw string) (map[string]any, error) {
	candidate := raw
	if m := codeFenceRegex.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	}

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start == -1 || end <= start {
		return nil, &ParseError{Msg: "no JSON object found"}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &obj); err != nil {
		return nil, &ParseError{Msg: "invalid JSON in completion output", Err: err}
	}
	return obj, nil
}
