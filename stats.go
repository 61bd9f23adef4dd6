package forms

import "fmt"

// Stats accumulates frame statistics for debugging. Counters are
// cumulative; use Context.ResetStats to start a new measurement window.
type Stats struct {
	// Frames is the number of BeginFrame calls.
	Frames int
	// Painted is the number of components painted.
	Painted int
	// Culled is the number of components skipped for invisibility.
	Culled int
	// TextMeasurements is the number of renderer text measurements.
	TextMeasurements int
}

// String formats the statistics for a debug overlay or log line.
func (s Stats) String() string {
	return fmt.Sprintf("frames=%d painted=%d culled=%d measurements=%d",
		s.Frames, s.Painted, s.Culled, s.TextMeasurements)
}
