package codec

import (
	"encoding/json"
	"fmt"
	"sort"
)

// EncodeJSON serializes the table as an indented array of objects, the
// structured export offered next to the tabular one. Record order is
// preserved; key order within an object follows Go's JSON marshaling.
func EncodeJSON(t *Table) ([]byte, error) {
	rows := t.Rows
	if rows == nil {
		rows = []Row{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding rows as JSON: %w", err)
	}
	return data, nil
}

// DecodeJSON parses an array-of-objects export back into a Table. The header
// order of the original tabular form is not carried by JSON, so headers are
// rebuilt as the sorted union of keys seen across all records; every record's
// fields and values are preserved.
func DecodeJSON(data []byte) (*Table, error) {
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing JSON rows: %w", err)
	}

	seen := make(map[string]bool)
	var headers []string
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
		}
	}
	sort.Strings(headers)

	// Pad rows so every header resolves to at least an empty string.
	for _, row := range rows {
		for _, key := range headers {
			if _, ok := row[key]; !ok {
				row[key] = ""
			}
		}
	}

	return &Table{Headers: headers, Rows: rows}, nil
}
