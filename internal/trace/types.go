package trace

// #region trace-config
// Config holds the refractory dynamics constants.
type Config struct {
	Alpha      float64 // trace decay (recommended 0.7-0.95)
	Beta       float64 // activation coupling (recommended 0.01-0.15)
	Gamma      float64 // gradient coupling (recommended 0.01-0.15)
	InputClamp float64 // magnitude cap applied to activations and gradients before coupling
}

// DefaultConfig returns the whitepaper defaults.
func DefaultConfig() Config {
	return Config{
		Alpha:      0.9,
		Beta:       0.05,
		Gamma:      0.05,
		InputClamp: 1e6,
	}
}

// #endregion trace-config

// #region gate-config
// GateConfig holds the gate shape parameters.
type GateConfig struct {
	Kappa       float64 // half-open point on the trace axis (recommended 0.2-0.4)
	Temperature float64 // smoothness of the open/closed transition (recommended 0.01-0.1)
}

// DefaultGateConfig returns the whitepaper defaults.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		Kappa:       0.3,
		Temperature: 0.05,
	}
}

// #endregion gate-config
