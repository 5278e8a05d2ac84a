package domain

import (
	"strconv"
	"strings"
)

// Answers maps question IDs to canonical scalar answers.
//
// Every value is stored in its canonical string form: free text as-is,
// numbers in decimal notation, booleans as "true"/"false", dates as
// YYYY-MM-DD. Callers own the map; the engine only reads it.
type Answers map[string]string

// Has reports whether the question has a non-empty answer.
func (a Answers) Has(id string) bool {
	return strings.TrimSpace(a[id]) != ""
}

// Truthy reports whether the answer for id satisfies a dependsOn condition
// or a conditional block: present, non-empty and not the canonical "false".
func (a Answers) Truthy(id string) bool {
	v := strings.TrimSpace(a[id])
	return v != "" && v != "false"
}

// Clone returns an independent copy of the answer map.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Stringify converts an arbitrary JSON-ish scalar into its canonical string
// form. The second return is false for values that have no scalar encoding
// (maps, slices, ...).
func Stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// AnswersFromAny normalizes a decoded JSON object into an Answers map.
// Non-scalar values are dropped; the boundary validator is responsible for
// rejecting them with a proper error before they ever reach a session.
func AnswersFromAny(raw map[string]any) Answers {
	out := make(Answers, len(raw))
	for k, v := range raw {
		if s, ok := Stringify(v); ok {
			out[k] = s
		}
	}
	return out
}
