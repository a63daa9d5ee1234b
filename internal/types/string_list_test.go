package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantValues  []string
		wantPresent bool
	}{
		{"array of strings", `["Go", "React"]`, []string{"Go", "React"}, true},
		{"empty array", `[]`, []string{}, true},
		{"single string", `"Remote"`, []string{"Remote"}, true},
		{"blank string", `"   "`, []string{}, true},
		{"null", `null`, nil, false},
		{"number at top level", `42`, nil, false},
		{"object", `{"a": 1}`, nil, false},
		{"mixed array", `["Go", 40000, true, null, "", {"x": 1}]`, []string{"Go", "40000"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &l))
			assert.Equal(t, tt.wantPresent, l.Present)
			if tt.wantValues == nil {
				assert.Empty(t, l.Values)
			} else {
				assert.Equal(t, tt.wantValues, l.Values)
			}
		})
	}
}

func TestStringList_AbsentVersusEmpty(t *testing.T) {
	var doc struct {
		Missing StringList `json:"missing"`
		Empty   StringList `json:"empty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"empty": []}`), &doc))

	assert.False(t, doc.Missing.Present)
	assert.True(t, doc.Empty.Present)
	assert.True(t, doc.Missing.IsEmpty())
	assert.True(t, doc.Empty.IsEmpty())
}

func TestStringList_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A StringList `json:"a"`
		B StringList `json:"b"`
		C StringList `json:"c"`
	}{
		A: NewStringList("x"),
		B: NewStringList(),
		C: StringList{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": ["x"], "b": [], "c": null}`, string(out))
}

func TestStringList_Contains_CaseSensitive(t *testing.T) {
	l := NewStringList("Remote", "Berlin")
	assert.True(t, l.Contains("Remote"))
	assert.False(t, l.Contains("remote"))
	assert.False(t, l.Contains(""))
}

func TestStringList_First(t *testing.T) {
	first, ok := NewStringList("40000", "50000").First()
	assert.True(t, ok)
	assert.Equal(t, "40000", first)

	_, ok = StringList{}.First()
	assert.False(t, ok)
}
