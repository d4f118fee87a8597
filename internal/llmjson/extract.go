// Package llmjson locates, decodes and coerces JSON objects embedded in free-form model output.
package llmjson

import (
	"regexp"
	"strings"
)

var (
	jsonFencePattern = regexp.MustCompile("(?is)```\\s*json[ \\t]*\\r?\\n?(.*?)```")
	anyFencePattern  = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \\t]*\\r?\\n?(.*?)```")
)

// Candidates returns the JSON-like substrings of raw in precedence order:
// the first fenced block labeled json, the first fenced block of any kind,
// and the span from the first '{' to the last '}'.
func Candidates(raw string) []string {
	var candidates []string

	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			return
		}
		for _, existing := range candidates {
			if existing == candidate {
				return
			}
		}
		candidates = append(candidates, candidate)
	}

	if match := jsonFencePattern.FindStringSubmatch(raw); match != nil {
		add(match[1])
	}

	if match := anyFencePattern.FindStringSubmatch(raw); match != nil {
		add(match[1])
	}

	if start := strings.Index(raw, "{"); start != -1 {
		if end := strings.LastIndex(raw, "}"); end > start {
			add(raw[start : end+1])
		}
	}

	return candidates
}

// Extract returns the highest precedence candidate, if any.
func Extract(raw string) (string, bool) {
	candidates := Candidates(raw)
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}
