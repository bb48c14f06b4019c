package models

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"
)

type ExportOutcome string

const (
	OutcomeExported        ExportOutcome = "exported"
	OutcomePartialFailure  ExportOutcome = "partial_failure"
	OutcomeFailed          ExportOutcome = "failed"
	OutcomeNothingToExport ExportOutcome = "nothing_to_export"
)

type ExportAction string

const (
	ActionCopyText  ExportAction = "copy_text"
	ActionSaveMedia ExportAction = "save_media"
)

// ActionResult is the outcome of a single copy or save request. Requests
// are independent so one failing never hides its siblings' results.
type ActionResult struct {
	Action   ExportAction `json:"action"`
	Filename string       `json:"filename,omitempty"`
	URL      string       `json:"url,omitempty"`
	OK       bool         `json:"ok"`
	Error    string       `json:"error,omitempty"`
}

type ExportResult struct {
	Outcome ExportOutcome  `json:"outcome"`
	Actions []ActionResult `json:"actions"`
}

// SerializedColours stores a string slice as a comma separated value
// in the database.
// Example input: []string{"#020304", "#6581be"}
// Example DB value: #020304,#6581be
type SerializedColours []string

func (s SerializedColours) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

func (s *SerializedColours) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		if v == "" {
			*s = SerializedColours{}
			return nil
		}
		*s = SerializedColours(strings.Split(v, ","))
		return nil
	default:
		return errors.New("incompatible type for SerializedColours")
	}
}

// ExportRecord is one completed export sub-action as persisted for the
// history endpoint.
type ExportRecord struct {
	ID              string            `db:"id" json:"id"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
	Action          string            `db:"action" json:"action"`
	Filename        string            `db:"filename" json:"filename,omitempty"`
	URL             string            `db:"url" json:"url,omitempty"`
	Outcome         string            `db:"outcome" json:"outcome"`
	Detail          string            `db:"detail" json:"detail,omitempty"`
	DominantColours SerializedColours `db:"dominant_colours" json:"dominant_colours,omitempty"`
}

// Preference is a single persisted device preference, keyed by name.
type Preference struct {
	ID    string `db:"id" json:"id"`
	Value string `db:"value" json:"value"`
}
