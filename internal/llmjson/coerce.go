package llmjson

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text returns the trimmed string value or fallback when v is not a non-blank string.
func Text(v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}

// Score coerces v into an integer clamped to [lo, hi]. Missing or
// non-numeric values become lo.
func Score(v any, lo, hi int) int {
	f := Float(v)
	if math.IsNaN(f) {
		return lo
	}
	return int(math.Max(float64(lo), math.Min(float64(hi), math.Round(f))))
}

// Float returns v as a finite float64, or NaN when it is not a number or
// numeric string. Infinities count as non-numeric.
func Float(v any) float64 {
	f := parseFloat(v)
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func parseFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		trimmed := strings.TrimSuffix(strings.TrimSpace(val), "%")
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// Bool reports true for true, "true"/"yes" and non-zero numbers.
func Bool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}

// Enum returns the member of allowed matching v, or fallback.
// An exact match wins over a case-insensitive one.
func Enum[T ~string](v any, allowed []T, fallback T) T {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	for _, member := range allowed {
		if string(member) == s {
			return member
		}
	}
	for _, member := range allowed {
		if strings.EqualFold(string(member), s) {
			return member
		}
	}
	return fallback
}

// Strings returns the non-blank scalar elements of v as strings. Non-arrays
// yield an empty, non-nil slice.
func Strings(v any) []string {
	items, _ := v.([]any)
	result := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		switch val := item.(type) {
		case string:
			s = strings.TrimSpace(val)
		case float64:
			s = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			s = strconv.FormatBool(val)
		default:
			continue
		}
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// Object returns v as a JSON object, or an empty object.
func Object(v any) map[string]any {
	if obj, ok := v.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

// Objects maps every object element of v through fn, skipping other elements.
func Objects[T any](v any, fn func(map[string]any) T) []T {
	items, _ := v.([]any)
	result := make([]T, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, fn(obj))
	}
	return result
}

// ToMap round-trips v through JSON so it can be fed back into a normalizer.
func ToMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return out, nil
}
