package logging

import "time"

// #region decision-entry
// DecisionEntry is the structured form of a commit decision emitted on the
// decision stream. One JSON object per line, suitable for log shippers.
type DecisionEntry struct {
	GroupID     string             `json:"group_id"`
	WindowID    string             `json:"window_id"`
	Outcome     string             `json:"outcome"`
	Action      string             `json:"action"`
	Reason      string             `json:"reason,omitempty"`
	FailureKind string             `json:"failure_kind,omitempty"`
	Deltas      map[string]float64 `json:"deltas,omitempty"`
	DatasetHash string             `json:"dataset_hash,omitempty"`
	Steps       int                `json:"steps"`
	CreatedAt   time.Time          `json:"created_at"`
}

// #endregion decision-entry
