// Package tasks holds the Google Tasks export model and rebuilds the task
// hierarchy from the flat record list of a task list.
package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Record ist ein einzelner Task aus dem Export.
type Record struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Parent  string `json:"parent,omitempty"`
	Updated string `json:"updated,omitempty"`
}

func (r Record) Completed() bool { return r.Status == StatusCompleted }

// Blank reports whether the title is empty or whitespace only.
func (r Record) Blank() bool { return strings.TrimSpace(r.Title) == "" }

type List struct {
	Title string   `json:"title"`
	Tasks []Record `json:"items"`
}

type Export struct {
	Lists []List `json:"items"`
}

// ErrParentCycle marks a record that was moved to the top level because its
// parent chain loops back onto itself.
var ErrParentCycle = errors.New("parent cycle, shown as top-level task")

// ErrMissingItems is returned when the document has no top-level "items" array.
var ErrMissingItems = errors.New(`missing top-level "items" array`)

// Parse decodes a Takeout Tasks.json document. Unknown fields are ignored;
// a list without "items" is an empty list.
func Parse(data []byte) (*Export, error) {
	var raw struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	trimmed := strings.TrimSpace(string(raw.Items))
	if trimmed == "" || trimmed == "null" || !strings.HasPrefix(trimmed, "[") {
		return nil, ErrMissingItems
	}
	var lists []List
	if err := json.Unmarshal(raw.Items, &lists); err != nil {
		return nil, fmt.Errorf("decode task lists: %w", err)
	}
	return &Export{Lists: lists}, nil
}
