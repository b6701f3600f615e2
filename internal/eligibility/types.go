package eligibility

// #region eligibility-config
// Config holds the eligibility accumulation constant.
type Config struct {
	Lambda float64 // exponential decay of the trace (recommended 0.7-0.99)
}

// DefaultConfig returns the whitepaper default.
func DefaultConfig() Config {
	return Config{Lambda: 0.9}
}

// #endregion eligibility-config

// #region budget-config
// BudgetConfig holds the update-capacity dynamics constants.
type BudgetConfig struct {
	Rho   float64 // budget decay (recommended 0.6-0.95)
	Delta float64 // eligibility scale (recommended 0.1-2.0)
	Floor float64 // hard lower bound, keeps every parameter updatable (recommended 0.01-0.2)
}

// DefaultBudgetConfig returns the whitepaper defaults.
func DefaultBudgetConfig() BudgetConfig {
	return BudgetConfig{
		Rho:   0.9,
		Delta: 1.0,
		Floor: 0.1,
	}
}

// #endregion budget-config
