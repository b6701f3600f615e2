package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/safegate/internal/audit"
	"github.com/danielpatrickdp/safegate/internal/commit"
	"github.com/danielpatrickdp/safegate/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to safegate.db")
	group := flag.String("group", "", "parameter group to export")
	last := flag.Int("last", 4, "number of most recent resolved windows to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *group == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/safegate.db --group id --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *group, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

// metricsRow pairs an audit record with its parsed metric results.
type metricsRow struct {
	Record  audit.Record
	Metrics []commit.MetricResult
}

func run(dbPath, groupID string, last int, outPath string) error {
	store, err := audit.NewStore(dbPath, audit.DefaultRetentionConfig())
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	// Starting weights come from the group's most recent checkpoint.
	cps, err := store.ListCheckpoints(groupID, 1)
	if err != nil {
		return fmt.Errorf("list checkpoints: %w", err)
	}
	if len(cps) == 0 {
		return fmt.Errorf("no checkpoint for group %s; save one before exporting", groupID)
	}
	params := cps[0].MainValue

	records, err := store.List(groupID, last)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	// Keep only metric-bearing windows (forced rejects and pins carry no
	// evidence to replay). Store returns newest first; reverse for
	// chronological order.
	var rows []metricsRow
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if rec.MetricsJSON == "" {
			continue
		}
		var metrics []commit.MetricResult
		if err := json.Unmarshal([]byte(rec.MetricsJSON), &metrics); err != nil {
			continue
		}
		if len(metrics) == 0 {
			continue
		}
		rows = append(rows, metricsRow{Record: rec, Metrics: metrics})
	}
	if len(rows) == 0 {
		return fmt.Errorf("no metric-bearing windows found in last %d records for group %s", last, groupID)
	}

	fmt.Printf("Found %d metric-bearing windows\n", len(rows))

	fixture := buildFixture(groupID, params, rows)

	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region output

func buildFixture(groupID string, params []float64, rows []metricsRow) replay.Fixture {
	windows := make([]replay.FixtureWindow, len(rows))
	for i, r := range rows {
		main := make(map[string]float64, len(r.Metrics))
		shadow := make(map[string]float64, len(r.Metrics))
		for _, m := range r.Metrics {
			main[m.Name] = m.Main
			shadow[m.Name] = m.Shadow
		}
		windows[i] = replay.FixtureWindow{
			MainMetrics:     main,
			ShadowMetrics:   shadow,
			DatasetHash:     r.Record.DatasetHash,
			ExpectedOutcome: r.Record.Outcome,
		}
	}

	// The monitoring schema is reconstructed from the first window's metric
	// results; every window of a group resolves against the same schema.
	schema := make([]replay.FixtureMetric, len(rows[0].Metrics))
	for i, m := range rows[0].Metrics {
		schema[i] = replay.FixtureMetric{
			Name:      m.Name,
			Direction: string(m.Direction),
			MinDelta:  m.MinDelta,
		}
	}

	defaults := commit.DefaultConfig()
	return replay.Fixture{
		Description: fmt.Sprintf("Audit export: %d windows for group %s", len(rows), groupID),
		Params:      params,
		Config: replay.FixtureConfig{
			WindowSteps: defaults.WindowSteps,
			Chi:         defaults.Chi,
		},
		Schema:  schema,
		Windows: windows,
	}
}

func writeFixture(fixture replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d windows)\n", outPath, len(data), len(fixture.Windows))
	return nil
}

// #endregion output
