package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// #region log-decision
// LogDecision writes one decision entry as a JSON line to w.
func LogDecision(w io.Writer, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision
