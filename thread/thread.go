// Package thread generates ISO profile metric screw threads as signed
// distance solids.
//
// Threads are made by taking a 2D tooth profile, rotating it about the
// z-axis and spiralling it upwards as we move along z. The profile is a
// polygon of a single tooth on the (axial, radial) plane; multi-start
// threads replicate the swept ridge angularly instead of sweeping several
// profiles. The generators then square off the ends, cut lead-in or chamfer
// tapers, and fuse the base cylinder (external) or base tube (internal)
// the mating part is printed with.
//
// External and internal threads built with equal diameter, pitch and start
// count intermesh with no relative transform, regardless of the axial start
// offset either of them used. Internal radii carry a fixed clearance so a
// printed pair actually turns.
package thread

import (
	"errors"
	"fmt"
	"math"
)

const (
	// threadAngle is the flank angle measured from radial, in radians.
	// Cutting both flanks at this angle yields the ISO 60 degree included
	// angle.
	threadAngle = 30 * math.Pi / 180

	// effectiveRatio is the fraction of one pitch taken up by the angled
	// flank section. The remainder is split evenly between the flattened
	// valley and the flattened tip.
	effectiveRatio = 0.7
)

// ErrThreadTooShort reports that relief grooves consume the whole threaded
// length, leaving nothing to sweep.
var ErrThreadTooShort = errors.New("relief grooves consume whole thread length")

// shapeErr converts a panic raised by the geometry kernel into an error.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (e *shapeErr) Error() string {
	return fmt.Sprintf("%s", e.panicObj)
}
