package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// document is a decoded JSON object whose fields may be missing or loosely typed.
type document map[string]any

// decodeDocument decodes raw JSON and insists on an object at the root.
func decodeDocument(raw []byte, kind string) (document, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &InvalidInputError{Field: kind, Reason: "malformed JSON: " + err.Error()}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &InvalidInputError{Field: kind, Reason: "expected a JSON object, got " + jsonKind(v)}
	}
	return document(obj), nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return "object"
	}
}

// sub returns a nested object, or nil when the key is missing or not an object.
func (d document) sub(key string) document {
	if obj, ok := d[key].(map[string]any); ok {
		return document(obj)
	}
	return nil
}

// lookup returns the value for key from the first document that has it.
func lookup(key string, docs ...document) (any, bool) {
	for _, d := range docs {
		if d == nil {
			continue
		}
		if v, ok := d[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func (d document) list(key string) StringList {
	return coerceStringList(d[key])
}

func (d document) str(key string) string {
	return coerceString(d[key])
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceYears floors numeric values so that comparisons against integer band
// edges are unchanged. Negative, non-finite or non-numeric values become 0.
func coerceYears(v any) int {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(f))
}

func coerceBool(v any, def bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

func coerceTime(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
