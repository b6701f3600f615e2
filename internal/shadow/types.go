package shadow

// #region driver
// Driver selects the signal multiplied into the tentative delta.
type Driver string

const (
	// DriverGradient applies the raw per-step gradient.
	DriverGradient Driver = "gradient"
	// DriverEligibility applies the accumulated eligibility trace instead.
	DriverEligibility Driver = "eligibility"
)

// #endregion driver

// #region config
// Config holds the shadow update rule parameters.
type Config struct {
	Driver Driver
}

// DefaultConfig returns the raw-gradient rule.
func DefaultConfig() Config {
	return Config{Driver: DriverGradient}
}

// #endregion config

// #region parameter-state
// ParameterState is the full per-group numeric state owned by one engine
// instance: deployed main weights, tentative shadow weights, and the
// refractory/eligibility/budget dynamics that gate updates. All slices share
// one length.
type ParameterState struct {
	MainValue        []float64
	ShadowValue      []float64
	RefractoryTrace  []float64 // always within [0, 1]
	EligibilityTrace []float64
	Budget           []float64 // always >= the configured floor
}

// NewParameterState initializes state around the given main weights: shadow
// starts equal to main, traces start at zero, budget starts at the floor.
func NewParameterState(main []float64, budgetFloor float64) *ParameterState {
	n := len(main)
	ps := &ParameterState{
		MainValue:        append([]float64(nil), main...),
		ShadowValue:      append([]float64(nil), main...),
		RefractoryTrace:  make([]float64, n),
		EligibilityTrace: make([]float64, n),
		Budget:           make([]float64, n),
	}
	for i := range ps.Budget {
		ps.Budget[i] = budgetFloor
	}
	return ps
}

// Len returns the parameter count.
func (ps *ParameterState) Len() int {
	return len(ps.MainValue)
}

// ResetShadow discards the tentative weights, restoring shadow to an exact
// copy of main. This is the rollback primitive.
func (ps *ParameterState) ResetShadow() {
	copy(ps.ShadowValue, ps.MainValue)
}

// BlendCommit merges shadow into main with the partial blend fraction chi:
// main = (1-chi)*main + chi*shadow, then resets shadow to the new main.
// Evaluated in delta form so a commit with shadow == main is an exact no-op.
func (ps *ParameterState) BlendCommit(chi float64) {
	for i := range ps.MainValue {
		ps.MainValue[i] += chi * (ps.ShadowValue[i] - ps.MainValue[i])
	}
	copy(ps.ShadowValue, ps.MainValue)
}

// PinMain overwrites main with a designated checkpoint and discards shadow.
func (ps *ParameterState) PinMain(checkpoint []float64) {
	copy(ps.MainValue, checkpoint)
	copy(ps.ShadowValue, checkpoint)
}

// #endregion parameter-state
