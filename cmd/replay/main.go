package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/safegate/internal/audit"
	"github.com/danielpatrickdp/safegate/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to safegate.db (audit-verify mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	group := flag.String("group", "", "restrict audit verification to one group")
	last := flag.Int("last", 1000, "number of most recent audit records to verify")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/safegate.db [--group id] [--last N]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *group, *last)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	fmt.Printf("%-12s| %-15s| %-15s| %s\n", "Window", "Expected", "Replayed", "Match")
	fmt.Printf("%-12s+%-15s+%-15s+%s\n",
		"------------", "----------------", "----------------", "------")

	for _, r := range results {
		match := "DIFF"
		if r.Match {
			match = "OK"
		}
		exp := r.Expected
		if exp == "" {
			exp = "any"
		}
		fmt.Printf("%-12d| %-15s| %-15s| %s\n", r.WindowIndex, exp, r.Actual, match)
	}

	matches := summary.TotalWindows - summary.Mismatches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n",
		summary.TotalWindows, matches, summary.Mismatches)
	fmt.Printf("Commits: %d, rejects: %d\n", summary.Commits, summary.Rejects)

	if summary.Mismatches > 0 {
		return 1
	}
	return 0
}

// #endregion fixture-mode

// #region db-mode

func runDBMode(dbPath, groupID string, last int) int {
	store, err := audit.NewStore(dbPath, audit.DefaultRetentionConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	records, err := store.List(groupID, last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list records: %v\n", err)
		return 2
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no audit records found")
		return 2
	}

	checks, err := replay.VerifyAudit(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify: %v\n", err)
		return 2
	}

	fmt.Printf("%-12s| %-15s| %-15s| %s\n", "Record", "Recorded", "Recomputed", "Match")
	fmt.Printf("%-12s+%-15s+%-15s+%s\n",
		"------------", "----------------", "----------------", "------")

	matches := 0
	for _, c := range checks {
		match := "DIFF"
		if c.Match {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %-15s| %-15s| %s\n", shortID(c.RecordID), c.Outcome, c.Recomputed, match)
	}

	diverge := len(checks) - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", len(checks), matches, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion db-mode

// #region helpers

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion helpers
