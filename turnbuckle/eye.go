package turnbuckle

import (
	"errors"
	"math"
	"runtime/debug"

	"github.com/dalibor-frivaldsky/parametric-fff-printable-turnbuckle/iso"
	"github.com/dalibor-frivaldsky/parametric-fff-printable-turnbuckle/thread"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// EyeFittingParms configures one threaded eye fitting.
type EyeFittingParms struct {
	// ThreadDiameter and ThreadPitch must match the body. Pass the fit
	// adjusted diameter, not the nominal one.
	ThreadDiameter float64
	ThreadPitch    float64
	// TakeUp is the body take-up. The fitting is threaded over half of it.
	TakeUp float64
	// EyeInnerRadius is the radius of the hole through the eye.
	EyeInnerRadius float64
	// Hand selects the thread winding. Use Left for the fitting that
	// enters the single-dimple end of the body.
	Hand Hand
}

// EyeFitting returns one end fitting: an externally threaded stud carrying
// an unthreaded stem and a closed eye, flattened front and back. The thread
// spans [0, TakeUp/2] on z with its lead-in at the bottom, so the part
// prints on a flat face with the eye up and screws in without a seam catch.
func EyeFitting(p EyeFittingParms) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	switch {
	case p.ThreadDiameter <= 0:
		return nil, errors.New("thread diameter <= 0")
	case p.ThreadPitch <= 0:
		return nil, errors.New("thread pitch <= 0")
	case p.TakeUp <= 0:
		return nil, errors.New("take-up <= 0")
	case p.EyeInnerRadius <= 0:
		return nil, errors.New("eye inner radius <= 0")
	}
	r := p.ThreadDiameter / 2
	halfThread := p.TakeUp / 2
	stemLen := r + 5*iso.MM
	ringR := r + p.EyeInnerRadius
	thickness := 2 * thread.MinorRadius(p.ThreadDiameter, p.ThreadPitch, false) * math.Cos(30*math.Pi/180)
	reach := halfThread + stemLen + 2*ringR + r

	// Print flats. The slab is oversize on x and z so only the faces at
	// y = +-thickness/2 cut.
	cutter := must3.Box(r3.Vec{
		X: 2 * (p.ThreadDiameter + p.EyeInnerRadius),
		Y: thickness,
		Z: reach + p.ThreadDiameter,
	}, 0)
	cutter = sdf.Transform3D(cutter, sdf.Translate3D(r3.Vec{Z: reach / 2}))

	ext, err := thread.External(thread.ExternalParms{
		Diameter:     p.ThreadDiameter,
		Pitch:        p.ThreadPitch,
		Length:       halfThread,
		BottomLeadIn: true,
		LeftHand:     p.Hand == Left,
	})
	if err != nil {
		return nil, err
	}
	stud := sdf.Difference3D(sdf.Intersect3D(ext, cutter), handMarkers(thickness/2, p.Hand, 0))

	stem := must3.Cylinder(stemLen, r, 0)
	stem = sdf.Transform3D(stem, sdf.Translate3D(r3.Vec{Z: halfThread + stemLen/2}))

	// The eye is a torus stood up so its ring plane contains the axis.
	section := sdf.Transform2D(must2.Circle(r), sdf.Translate2D(r2.Vec{X: ringR}))
	eye := sdf.Revolve3D(section, 2*math.Pi)
	m := sdf.Translate3D(r3.Vec{Z: halfThread + stemLen + ringR}).Mul(sdf.RotateX(math.Pi / 2))
	eye = sdf.Transform3D(eye, m)

	return sdf.Union3D(stud, sdf.Intersect3D(sdf.Union3D(stem, eye), cutter)), nil
}
