package thread

import "math"

// Thread profile math. Everything here is a closed-form function of
// diameter and pitch; no geometry is constructed.

// PerfectHeight returns the radial height the thread triangle would have in
// the absence of the flattened valley and flattened tip: the amount by which
// a sharp-V thread protrudes outwards from the base cylinder of an external
// thread, or inwards from the base tube of an internal thread.
func PerfectHeight(pitch float64) float64 {
	return pitch / (2 * math.Tan(threadAngle))
}

// internalClearance is the radius increase applied to internal (female)
// threads to provide wiggle room around the male thread. It depends only on
// pitch. There is no knob to adjust male/female clearance besides editing
// this function; that keeps the parameter surface small.
func internalClearance(pitch float64) float64 {
	return 0.1 * PerfectHeight(pitch)
}

// MajorRadius returns the major radius of the thread, always the greater of
// the two radii. Internal threads are enlarged by the clearance.
func MajorRadius(diameter, pitch float64, internal bool) float64 {
	r := diameter / 2
	if internal {
		r += internalClearance(pitch)
	}
	return r
}

// MinorRadius returns the minor radius of the thread, always the lesser of
// the two radii.
func MinorRadius(diameter, pitch float64, internal bool) float64 {
	return MajorRadius(diameter, pitch, internal) - effectiveRatio*PerfectHeight(pitch)
}

// PerfectMajorRadius returns what the major radius would be if the thread
// were cut perfectly triangular, without the flattened tip.
func PerfectMajorRadius(diameter, pitch float64, internal bool) float64 {
	return MajorRadius(diameter, pitch, internal) + (1-effectiveRatio)*PerfectHeight(pitch)/2
}

// PerfectMinorRadius returns what the minor radius would be if the thread
// were cut perfectly triangular, without the flat spot in the valley.
func PerfectMinorRadius(diameter, pitch float64, internal bool) float64 {
	return PerfectMajorRadius(diameter, pitch, internal) - PerfectHeight(pitch)
}

// LeadIn returns the axial run of a lead-in or chamfer transition. The
// transition is cut at the thread angle, so the run is the major-minor
// radius delta projected through tan of that angle. The delta equals
// effectiveRatio times PerfectHeight for internal and external threads
// alike: the internal clearance shifts both radii together, and neither
// radius delta nor angle depends on diameter, so the run is a function of
// pitch only. Callers reserve this much axial room per tapered end.
func LeadIn(pitch float64) float64 {
	return math.Tan(threadAngle) * effectiveRatio * PerfectHeight(pitch)
}

// ReliefWidth returns the width of the flat spot in the thread valley of a
// standard thread. This is also the width of the flat spot on the thread
// tip.
func ReliefWidth(pitch float64) float64 {
	return (1 - effectiveRatio) * pitch / 2
}
