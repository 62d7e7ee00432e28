// Package interpret extracts SEO fields from raw LLM completion text.
//
// Model output is unreliable: the JSON we asked for may be wrapped in prose,
// fenced in markdown, or missing entirely. Interpretation is therefore
// best-effort and never fails — callers get possibly-empty fields plus a
// boolean reporting whether anything was extracted at all.
package interpret

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Result holds the SEO metadata extracted from a model completion.
type Result struct {
	Description string
	Keywords    string
}

var (
	descPattern     = regexp.MustCompile(`(?i)description["']?\s*:\s*["']?([^"'\n]+)`)
	keywordsPattern = regexp.MustCompile(`(?i)keywords["']?\s*:\s*["']?([^"'\n]+)`)
)

// Interpret extracts description and keywords from raw completion text.
// Tier one locates the largest brace-delimited substring and decodes it as
// JSON; tier two falls back to regex extraction of the two tokens. The
// boolean is false only when both fields came back empty, letting callers
// tell "nothing usable in the response" apart from a partial answer.
func Interpret(raw string) (Result, bool) {
	res, ok := interpretJSON(raw)
	if !ok {
		res = interpretLoose(raw)
	}
	found := res.Description != "" || res.Keywords != ""
	return res, found
}

func interpretJSON(raw string) (Result, bool) {
	candidate := stripFences(raw)

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start < 0 || end <= start {
		return Result{}, false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &fields); err != nil {
		return Result{}, false
	}

	return Result{
		Description: coerceString(fields["description"]),
		Keywords:    coerceString(fields["keywords"]),
	}, true
}

// stripFences unwraps a markdown ```json code block if one is present.
func stripFences(raw string) string {
	if !strings.Contains(raw, "```") {
		return raw
	}
	if parts := strings.SplitN(raw, "```json", 2); len(parts) == 2 {
		raw = parts[1]
	} else if parts := strings.SplitN(raw, "```", 2); len(parts) == 2 {
		raw = parts[1]
	}
	if end := strings.Index(raw, "```"); end >= 0 {
		raw = raw[:end]
	}
	return strings.TrimSpace(raw)
}

// coerceString flattens the loose shapes models produce for a field:
// a plain string, or a list of strings joined comma-separated.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []any:
		var parts []string
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// interpretLoose pattern-matches the two tokens independently, capturing the
// value after the colon up to the next quote or end of line.
func interpretLoose(raw string) Result {
	var res Result
	if m := descPattern.FindStringSubmatch(raw); m != nil {
		res.Description = strings.TrimSpace(m[1])
	}
	if m := keywordsPattern.FindStringSubmatch(raw); m != nil {
		res.Keywords = strings.TrimSpace(m[1])
	}
	return res
}
