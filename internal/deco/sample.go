package deco

// DiveSample is one (time, tissue) observation from a recorded dive log.
// Tissue pressures are input data carried by the log, not computed here;
// they already encode the dive history up to Time.
type DiveSample struct {
	Time           float64 // seconds since dive start
	Depth          float64 // metres
	Ambient        float64 // bar, absolute
	TissueIndex    int     // 1-based compartment reference
	TissuePressure float64 // bar, inert-gas partial pressure
	ReportedNDL    float64 // minutes, from the dive computer; NaN when absent
}

// EvaluatedSample is a DiveSample plus the derived decompression state.
type EvaluatedSample struct {
	DiveSample

	Ceiling       float64 // bar, minimum safe ambient pressure after surface projection
	InDeco        bool    // ceiling above surface pressure
	MValueSurface float64 // bar, adjusted tissue pressure limit at the surface
	NDL           float64 // minutes until the surface limit would be reached; NaN when it never is
}
