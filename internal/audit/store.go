package audit

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	record_id     TEXT NOT NULL UNIQUE,
	group_id      TEXT NOT NULL,
	window_id     TEXT NOT NULL,
	outcome       TEXT NOT NULL,
	action        TEXT NOT NULL,
	failure_kind  TEXT,
	reason        TEXT,
	metrics_json  TEXT,
	deltas_json   TEXT,
	dataset_hash  TEXT,
	steps         INTEGER NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_group ON audit_log(group_id, created_at);

CREATE TABLE IF NOT EXISTS checkpoints (
	checkpoint_id TEXT PRIMARY KEY,
	group_id      TEXT NOT NULL,
	main_value    BLOB NOT NULL,
	note          TEXT,
	created_at    TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store persists the append-only audit trail and main-weight checkpoints in
// SQLite, independent of in-memory parameter state.
type Store struct {
	db        *sql.DB
	retention RetentionConfig
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string, retention RetentionConfig) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, retention: retention}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region append
// Append inserts an audit record and applies the retention policy. RecordID
// and CreatedAt are filled when empty. Existing rows are never mutated.
func (s *Store) Append(rec Record) (Record, error) {
	if rec.RecordID == "" {
		rec.RecordID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	deltasJSON, err := json.Marshal(rec.Deltas)
	if err != nil {
		return Record{}, fmt.Errorf("marshal deltas: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO audit_log (record_id, group_id, window_id, outcome, action, failure_kind, reason, metrics_json, deltas_json, dataset_hash, steps, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RecordID, rec.GroupID, rec.WindowID, rec.Outcome, rec.Action,
		nullIfEmpty(rec.FailureKind), nullIfEmpty(rec.Reason),
		nullIfEmpty(rec.MetricsJSON), string(deltasJSON), nullIfEmpty(rec.DatasetHash),
		rec.Steps, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("append record: %w", err)
	}

	if err := s.prune(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// prune enforces the retention policy after each append.
func (s *Store) prune() error {
	if s.retention.MaxAge > 0 {
		cutoff := time.Now().UTC().Add(-s.retention.MaxAge).Format(time.RFC3339Nano)
		if _, err := s.db.Exec(`DELETE FROM audit_log WHERE created_at < ?`, cutoff); err != nil {
			return fmt.Errorf("prune by age: %w", err)
		}
	}
	if s.retention.MaxRecords > 0 {
		_, err := s.db.Exec(
			`DELETE FROM audit_log WHERE id NOT IN
			 (SELECT id FROM audit_log ORDER BY id DESC LIMIT ?)`,
			s.retention.MaxRecords,
		)
		if err != nil {
			return fmt.Errorf("prune by count: %w", err)
		}
	}
	return nil
}

// #endregion append

// #region list
// List returns the most recent audit records, newest first. groupID "" means
// all groups.
func (s *Store) List(groupID string, limit int) ([]Record, error) {
	query := `SELECT record_id, group_id, window_id, outcome, action, failure_kind, reason, metrics_json, deltas_json, dataset_hash, steps, created_at
		 FROM audit_log`
	args := []interface{}{}
	if groupID != "" {
		query += ` WHERE group_id = ?`
		args = append(args, groupID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var failureKind, reason, metricsJSON, deltasJSON, datasetHash sql.NullString
		var createdStr string

		if err := rows.Scan(&rec.RecordID, &rec.GroupID, &rec.WindowID, &rec.Outcome, &rec.Action,
			&failureKind, &reason, &metricsJSON, &deltasJSON, &datasetHash, &rec.Steps, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.FailureKind = failureKind.String
		rec.Reason = reason.String
		rec.MetricsJSON = metricsJSON.String
		rec.DatasetHash = datasetHash.String
		if deltasJSON.Valid && deltasJSON.String != "" {
			if err := json.Unmarshal([]byte(deltasJSON.String), &rec.Deltas); err != nil {
				return nil, fmt.Errorf("unmarshal deltas: %w", err)
			}
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored audit records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM audit_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// #endregion list

// #region checkpoints
// SaveCheckpoint stores a snapshot of a group's main weights.
func (s *Store) SaveCheckpoint(groupID string, main []float64, note string) (Checkpoint, error) {
	cp := Checkpoint{
		CheckpointID: uuid.New().String(),
		GroupID:      groupID,
		MainValue:    append([]float64(nil), main...),
		Note:         note,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO checkpoints (checkpoint_id, group_id, main_value, note, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		cp.CheckpointID, cp.GroupID, encodeVector(cp.MainValue), nullIfEmpty(cp.Note),
		cp.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Checkpoint{}, fmt.Errorf("save checkpoint: %w", err)
	}
	return cp, nil
}

// GetCheckpoint retrieves a checkpoint by ID.
func (s *Store) GetCheckpoint(id string) (Checkpoint, error) {
	var cp Checkpoint
	var blob []byte
	var note sql.NullString
	var createdStr string

	err := s.db.QueryRow(
		`SELECT checkpoint_id, group_id, main_value, note, created_at
		 FROM checkpoints WHERE checkpoint_id = ?`, id,
	).Scan(&cp.CheckpointID, &cp.GroupID, &blob, &note, &createdStr)
	if err != nil {
		return Checkpoint{}, fmt.Errorf("get checkpoint %s: %w", id, err)
	}
	cp.MainValue = decodeVector(blob)
	cp.Note = note.String
	cp.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return cp, nil
}

// ListCheckpoints returns the most recent checkpoints for a group, newest
// first. groupID "" means all groups.
func (s *Store) ListCheckpoints(groupID string, limit int) ([]Checkpoint, error) {
	query := `SELECT checkpoint_id, group_id, main_value, note, created_at FROM checkpoints`
	args := []interface{}{}
	if groupID != "" {
		query += ` WHERE group_id = ?`
		args = append(args, groupID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	defer rows.Close()

	var cps []Checkpoint
	for rows.Next() {
		var cp Checkpoint
		var blob []byte
		var note sql.NullString
		var createdStr string
		if err := rows.Scan(&cp.CheckpointID, &cp.GroupID, &blob, &note, &createdStr); err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		cp.MainValue = decodeVector(blob)
		cp.Note = note.String
		cp.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		cps = append(cps, cp)
	}
	return cps, rows.Err()
}

// #endregion checkpoints

// #region vector-encoding
func encodeVector(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeVector(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}

// #endregion vector-encoding

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
