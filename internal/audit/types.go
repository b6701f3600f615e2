package audit

import "time"

// #region record
// Record is one immutable audit-trail entry: a validation window's metric
// results joined with the commit decision. Rows are append-only and persisted
// independently of parameter state for post-mortem analysis.
type Record struct {
	RecordID    string
	GroupID     string
	WindowID    string
	Outcome     string // commit | reject
	Action      string // blend | discard
	FailureKind string
	Reason      string
	MetricsJSON string
	Deltas      map[string]float64
	DatasetHash string
	Steps       int
	CreatedAt   time.Time
}

// #endregion record

// #region checkpoint
// Checkpoint is a stored snapshot of a group's main weights, usable as a
// manual-override pin target.
type Checkpoint struct {
	CheckpointID string
	GroupID      string
	MainValue    []float64
	Note         string
	CreatedAt    time.Time
}

// #endregion checkpoint

// #region retention
// RetentionConfig bounds the audit trail. Zero values disable the respective
// limit; capacity policy is configuration, not an engine invariant.
type RetentionConfig struct {
	MaxAge     time.Duration // drop records older than this
	MaxRecords int           // keep at most this many records
}

// DefaultRetentionConfig keeps everything.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{}
}

// #endregion retention
