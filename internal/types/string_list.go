package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringList is a list-valued document field that remembers whether it was present.
// Present=false means the field was missing, null or of an unusable type;
// Present=true with no Values means an explicit empty list.
type StringList struct {
	Values  []string
	Present bool
}

// NewStringList returns a present list holding the given values.
func NewStringList(values ...string) StringList {
	if values == nil {
		values = []string{}
	}
	return StringList{Values: values, Present: true}
}

// Len returns the number of values.
func (l StringList) Len() int {
	return len(l.Values)
}

// IsEmpty reports whether there is nothing to compare, regardless of presence.
func (l StringList) IsEmpty() bool {
	return len(l.Values) == 0
}

// First returns the first value, if any.
func (l StringList) First() (string, bool) {
	if len(l.Values) == 0 {
		return "", false
	}
	return l.Values[0], true
}

// Contains reports whether s is literally one of the values (case-sensitive).
func (l StringList) Contains(s string) bool {
	for _, v := range l.Values {
		if v == s {
			return true
		}
	}
	return false
}

// MarshalJSON encodes a present list as an array and an absent list as null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if !l.Present {
		return []byte("null"), nil
	}
	if l.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Values)
}

// UnmarshalJSON accepts an array, a single string or null.
// It never fails on a well-formed JSON value; unusable shapes leave the list absent.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = coerceStringList(raw)
	return nil
}

// coerceStringList converts a decoded JSON value into a StringList.
// Strings are kept verbatim (blank ones dropped), numbers are formatted,
// anything else inside an array is skipped.
func coerceStringList(raw any) StringList {
	switch v := raw.(type) {
	case nil:
		return StringList{}
	case string:
		if strings.TrimSpace(v) == "" {
			return NewStringList()
		}
		return NewStringList(v)
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			switch elem := item.(type) {
			case string:
				if strings.TrimSpace(elem) != "" {
					values = append(values, elem)
				}
			case float64:
				values = append(values, strconv.FormatFloat(elem, 'f', -1, 64))
			case json.Number:
				values = append(values, elem.String())
			}
		}
		return NewStringList(values...)
	default:
		return StringList{}
	}
}
