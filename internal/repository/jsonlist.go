package repository

// jsonlist.go holds the helpers used to persist list-valued fields
// (features, pros, cons, days_of_week, background image sets) as JSON text
// columns. MySQL stores them as TEXT; the repositories marshal on write and
// unmarshal on scan so handlers only ever see []string.

import "encoding/json"

// packStrings marshals a string slice for storage. A nil slice is stored as
// an empty JSON array so scans never produce null.
func packStrings(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unpackStrings reverses packStrings. Empty or invalid column values decode
// to an empty slice rather than failing the whole row scan.
func unpackStrings(s string) []string {
	if s == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
