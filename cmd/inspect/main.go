package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/safegate/internal/audit"
	"github.com/danielpatrickdp/safegate/internal/commit"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to safegate.db")
	last := flag.Int("last", 20, "show N most recent records")
	group := flag.String("group", "", "filter to one parameter group")
	record := flag.String("record", "", "show single audit record detail")
	checkpoints := flag.Bool("checkpoints", false, "list checkpoints instead of audit records")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/safegate.db [--last N] [--group id] [--record id] [--checkpoints] [--json]")
		os.Exit(2)
	}

	store, err := audit.NewStore(*dbPath, audit.DefaultRetentionConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *record != "":
		err = runDetailMode(store, *record, *jsonOut)
	case *checkpoints:
		err = runCheckpointMode(store, *group, *last, *jsonOut)
	default:
		err = runListMode(store, *group, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RecordID    string             `json:"record_id"`
	GroupID     string             `json:"group_id"`
	WindowID    string             `json:"window_id,omitempty"`
	Outcome     string             `json:"outcome"`
	Action      string             `json:"action"`
	FailureKind string             `json:"failure_kind,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	Deltas      map[string]float64 `json:"deltas,omitempty"`
	Steps       int                `json:"steps"`
	CreatedAt   string             `json:"created_at"`
}

func runListMode(store *audit.Store, groupID string, last int, jsonOut bool) error {
	records, err := store.List(groupID, last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no records found")
		return nil
	}

	// Store returns newest first; reverse for chronological order.
	rows := make([]listRow, len(records))
	for i, rec := range records {
		rows[len(records)-1-i] = toListRow(rec)
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-12s  %-10s  %-8s  %-10s  %-10s  %5s  %s\n",
		"Record", "Group", "Outcome", "Action", "Failure", "Steps", "Time")
	fmt.Printf("%-12s+-%-10s+-%-8s+-%-10s+-%-10s+-%5s+-%s\n",
		"------------", "----------", "--------", "----------", "----------", "-----", "--------------------")

	for _, r := range rows {
		failure := r.FailureKind
		if failure == "" {
			failure = "-"
		}
		fmt.Printf("%-12s  %-10s  %-8s  %-10s  %-10s  %5d  %s\n",
			shortID(r.RecordID), r.GroupID, r.Outcome, r.Action, failure, r.Steps, r.CreatedAt)
	}

	return nil
}

func toListRow(rec audit.Record) listRow {
	return listRow{
		RecordID:    rec.RecordID,
		GroupID:     rec.GroupID,
		WindowID:    rec.WindowID,
		Outcome:     rec.Outcome,
		Action:      rec.Action,
		FailureKind: rec.FailureKind,
		Reason:      rec.Reason,
		Deltas:      rec.Deltas,
		Steps:       rec.Steps,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	listRow
	DatasetHash string                `json:"dataset_hash,omitempty"`
	Metrics     []commit.MetricResult `json:"metrics,omitempty"`
}

func runDetailMode(store *audit.Store, recordID string, jsonOut bool) error {
	// Record IDs may be abbreviated; scan for a prefix match.
	records, err := store.List("", 10000)
	if err != nil {
		return err
	}
	var rec *audit.Record
	for i := range records {
		if records[i].RecordID == recordID || shortID(records[i].RecordID) == recordID {
			rec = &records[i]
			break
		}
	}
	if rec == nil {
		return fmt.Errorf("record %s not found", recordID)
	}

	out := detailOutput{
		listRow:     toListRow(*rec),
		DatasetHash: rec.DatasetHash,
	}
	if rec.MetricsJSON != "" {
		if err := json.Unmarshal([]byte(rec.MetricsJSON), &out.Metrics); err != nil {
			return fmt.Errorf("parse metrics: %w", err)
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Record:   %s\n", out.RecordID)
	fmt.Printf("Group:    %s\n", out.GroupID)
	fmt.Printf("Window:   %s\n", out.WindowID)
	fmt.Printf("Outcome:  %s\n", out.Outcome)
	fmt.Printf("Action:   %s\n", out.Action)
	if out.FailureKind != "" {
		fmt.Printf("Failure:  %s\n", out.FailureKind)
	}
	fmt.Printf("Reason:   %s\n", out.Reason)
	fmt.Printf("Steps:    %d\n", out.Steps)
	if out.DatasetHash != "" {
		fmt.Printf("Dataset:  %s\n", out.DatasetHash)
	}
	fmt.Printf("Created:  %s\n", out.CreatedAt)

	if len(out.Metrics) > 0 {
		fmt.Printf("\nMetrics:\n")
		for _, m := range out.Metrics {
			verdict := "fail"
			if m.Pass {
				verdict = "pass"
			}
			fmt.Printf("  %-16s %-16s main=%.6f shadow=%.6f delta=%+.6f  %s\n",
				m.Name, string(m.Direction), m.Main, m.Shadow, m.Delta, verdict)
		}
	}

	return nil
}

// #endregion detail-mode

// #region checkpoint-mode

type checkpointRow struct {
	CheckpointID string `json:"checkpoint_id"`
	GroupID      string `json:"group_id"`
	Params       int    `json:"params"`
	Note         string `json:"note,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func runCheckpointMode(store *audit.Store, groupID string, last int, jsonOut bool) error {
	cps, err := store.ListCheckpoints(groupID, last)
	if err != nil {
		return err
	}
	if len(cps) == 0 {
		fmt.Fprintln(os.Stderr, "no checkpoints found")
		return nil
	}

	rows := make([]checkpointRow, len(cps))
	for i, cp := range cps {
		rows[i] = checkpointRow{
			CheckpointID: cp.CheckpointID,
			GroupID:      cp.GroupID,
			Params:       len(cp.MainValue),
			Note:         cp.Note,
			CreatedAt:    cp.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-12s  %-10s  %6s  %-20s  %s\n", "Checkpoint", "Group", "Params", "Time", "Note")
	fmt.Printf("%-12s+-%-10s+-%6s+-%-20s+-%s\n",
		"------------", "----------", "------", "--------------------", "--------")
	for _, r := range rows {
		fmt.Printf("%-12s  %-10s  %6d  %-20s  %s\n",
			shortID(r.CheckpointID), r.GroupID, r.Params, r.CreatedAt, r.Note)
	}
	return nil
}

// #endregion checkpoint-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
