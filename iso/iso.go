// Package iso holds the ISO 261 metric thread dimensions the thread
// generators are usually driven with. Everything is in millimetres.
package iso

import "fmt"

// MM is one model unit, so dimension arithmetic can read with its unit
// attached.
const MM = 1.0

// Nominal diameters of the integer coarse series sizes.
const (
	M1  = 1 * MM
	M2  = 2 * MM
	M3  = 3 * MM
	M4  = 4 * MM
	M5  = 5 * MM
	M6  = 6 * MM
	M8  = 8 * MM
	M10 = 10 * MM
	M12 = 12 * MM
	M16 = 16 * MM
	M20 = 20 * MM
	M24 = 24 * MM
	M30 = 30 * MM
	M36 = 36 * MM
	M42 = 42 * MM
	M48 = 48 * MM
	M56 = 56 * MM
	M64 = 64 * MM
)

// coarse maps nominal diameter to the coarse series pitch.
var coarse = map[float64]float64{
	1:   0.25,
	1.2: 0.25,
	1.6: 0.35,
	2:   0.4,
	2.5: 0.45,
	3:   0.5,
	4:   0.7,
	5:   0.8,
	6:   1.0,
	8:   1.25,
	10:  1.5,
	12:  1.75,
	16:  2.0,
	20:  2.5,
	24:  3.0,
	30:  3.5,
	36:  4.0,
	42:  4.5,
	48:  5.0,
	56:  5.5,
	64:  6.0,
}

// CoarsePitch returns the coarse series pitch for a nominal diameter. The
// diameter must match a standard size exactly.
func CoarsePitch(diameter float64) (float64, error) {
	if p, ok := coarse[diameter]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("no coarse pitch for M%g", diameter)
}

// Fit widens or narrows nominal diameters to suit a manufacturing
// process. Use the same Fit on both halves of a mating pair.
type Fit struct {
	// Tolerance is the diameter adjustment per part. Internal threads
	// grow by it and external threads shrink by it, leaving the pair
	// twice this much looser than the nominal ISO fit.
	Tolerance float64
}

// FDM suits fused filament printers. Tighter fits weld printed pairs
// together.
var FDM = Fit{Tolerance: 0.1 * MM}

// Internal returns the adjusted diameter for an internal thread.
func (f Fit) Internal(diameter float64) float64 {
	return diameter + f.Tolerance
}

// External returns the adjusted diameter for an external thread.
func (f Fit) External(diameter float64) float64 {
	return diameter - f.Tolerance
}
