// Package turnbuckle assembles the printable parts of a turnbuckle: a hex
// body with a left-hand internal thread at one end and a right-hand one at
// the other, plus the two eye fittings that screw into it. Turning the body
// then pulls the eyes together without twisting whatever they are hooked to.
//
// Every threaded end carries spherical dimples marking its handedness, one
// dimple for left-hand and two for right-hand, so the parts can be matched
// up after printing. The eye fittings are flattened front and back to a
// slab that prints lying down.
package turnbuckle

import (
	"fmt"

	"github.com/dalibor-frivaldsky/parametric-fff-printable-turnbuckle/iso"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hand is the winding direction of a screw thread.
type Hand int

const (
	// Right threads tighten clockwise, the common direction.
	Right Hand = iota
	// Left threads tighten counterclockwise.
	Left
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// shapeErr converts a panic raised by the geometry kernel into an error.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (e *shapeErr) Error() string {
	return fmt.Sprintf("%s", e.panicObj)
}

// handMarkers returns the handedness dimples for one threaded end, centered
// at height z on faces radius away from the axis. Left gets a single dimple
// on the -Y side, Right a second one mirrored to +Y.
func handMarkers(radius float64, hand Hand, z float64) sdf.SDF3 {
	dimple := must3.Sphere(1 * iso.MM)
	front := sdf.Transform3D(dimple, sdf.Translate3D(r3.Vec{Y: -radius, Z: z}))
	if hand == Left {
		return front
	}
	back := sdf.Transform3D(dimple, sdf.Translate3D(r3.Vec{Y: radius, Z: z}))
	return sdf.Union3D(front, back)
}
