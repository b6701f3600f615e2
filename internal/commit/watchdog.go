package commit

// #region watchdog-config
// WatchdogConfig bounds the variance of metric deltas across recent windows.
// A zero or negative VarianceBound disables the failsafe.
type WatchdogConfig struct {
	VarianceBound  float64
	HistoryWindows int // how many resolved windows to keep per metric
}

// DefaultWatchdogConfig keeps 8 windows of history with the failsafe off.
func DefaultWatchdogConfig() WatchdogConfig {
	return WatchdogConfig{
		VarianceBound:  0,
		HistoryWindows: 8,
	}
}

// #endregion watchdog-config

// #region watchdog
// Watchdog observes resolved windows and trips when any tracked metric's
// delta variance exceeds the bound, signalling the coordinator should be
// frozen. Once tripped it stays tripped.
type Watchdog struct {
	cfg     WatchdogConfig
	history map[string][]float64
	tripped bool
}

// NewWatchdog creates a watchdog with the given bounds.
func NewWatchdog(cfg WatchdogConfig) *Watchdog {
	if cfg.HistoryWindows < 2 {
		cfg.HistoryWindows = 2
	}
	return &Watchdog{
		cfg:     cfg,
		history: make(map[string][]float64),
	}
}

// Observe records a resolved window's metric deltas and reports whether the
// variance bound was exceeded. Forced rejects without metric results leave
// the history untouched.
func (w *Watchdog) Observe(dec Decision) bool {
	if w.cfg.VarianceBound <= 0 {
		return false
	}
	for _, r := range dec.Metrics {
		hist := append(w.history[r.Name], r.Delta)
		if len(hist) > w.cfg.HistoryWindows {
			hist = hist[len(hist)-w.cfg.HistoryWindows:]
		}
		w.history[r.Name] = hist

		if len(hist) >= 2 && variance(hist) > w.cfg.VarianceBound {
			w.tripped = true
		}
	}
	return w.tripped
}

// Tripped reports whether the failsafe has fired.
func (w *Watchdog) Tripped() bool {
	return w.tripped
}

// #endregion watchdog

// #region variance
// variance is the population variance of xs.
func variance(xs []float64) float64 {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(xs))
}

// #endregion variance
