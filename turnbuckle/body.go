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

// BodyParms configures the turnbuckle body.
type BodyParms struct {
	// TakeUp is the tensioning travel, the combined distance the two eye
	// fittings can screw in from their almost-disengaged position.
	TakeUp float64
	// ThreadDiameter and ThreadPitch describe both internal threads. Pass
	// the fit adjusted diameter, not the nominal one.
	ThreadDiameter float64
	ThreadPitch    float64
	// HandleDiameter is the hex stock width across corners.
	HandleDiameter float64
}

// Body returns the turnbuckle body: hex bar stock threaded left-hand over
// the bottom half and right-hand over the top half, with a grip slot cut
// through the middle for a tensioning rod. The stock sits on z=0 with the
// left-hand end down, TakeUp+2 tall.
func Body(p BodyParms) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	cornerRound := 1 * iso.MM
	cos30 := math.Cos(30 * math.Pi / 180)
	apothem := p.HandleDiameter / 2 * cos30
	slot := r2.Vec{X: apothem - 2, Y: p.TakeUp - 22}
	switch {
	case p.ThreadDiameter <= 0:
		return nil, errors.New("thread diameter <= 0")
	case p.ThreadPitch <= 0:
		return nil, errors.New("thread pitch <= 0")
	case apothem <= thread.MajorRadius(p.ThreadDiameter, p.ThreadPitch, true):
		return nil, errors.New("handle diameter too small for the thread")
	case slot.X <= 2*cornerRound:
		return nil, errors.New("handle diameter too small for the grip slot")
	case slot.Y <= 2*cornerRound:
		return nil, errors.New("take-up too short for the grip slot")
	}
	height := p.TakeUp + 2

	// Insetting the hexagon and offsetting back out rounds the vertices
	// while keeping the flats at the full apothem.
	hex2d := must2.Polygon(must2.Nagon(6, (apothem-cornerRound)/cos30))
	hex2d = sdf.Offset2D(hex2d, cornerRound)
	stock := sdf.Extrude3D(hex2d, height)
	stock = sdf.Transform3D(stock, sdf.Translate3D(r3.Vec{Z: height / 2}))

	// The bore is cut before the threads go in so it cannot eat the teeth.
	var bore sdf.SDF3 = must3.Cylinder(height+2, p.ThreadDiameter/2, 0)
	bore = sdf.Transform3D(bore, sdf.Translate3D(r3.Vec{Z: height / 2}))
	var body sdf.SDF3 = sdf.Difference3D(stock, bore)

	bottom, err := thread.Internal(thread.InternalParms{
		Diameter:      p.ThreadDiameter,
		Pitch:         p.ThreadPitch,
		Length:        p.TakeUp / 2,
		BottomChamfer: true,
		LeftHand:      true,
	})
	if err != nil {
		return nil, err
	}
	top, err := thread.Internal(thread.InternalParms{
		Diameter:   p.ThreadDiameter,
		Pitch:      p.ThreadPitch,
		Length:     p.TakeUp / 2,
		ZStart:     p.TakeUp/2 + 2,
		TopChamfer: true,
	})
	if err != nil {
		return nil, err
	}
	body = sdf.Union3D(body, bottom, top)

	// Grip slot through both flats, leaving 12mm of closed stock around
	// each threaded end.
	slot3d := sdf.Extrude3D(must2.Box(slot, cornerRound), 2*p.HandleDiameter)
	m := sdf.Translate3D(r3.Vec{Z: height / 2}).Mul(sdf.RotateX(math.Pi / 2))
	body = sdf.Difference3D(body, sdf.Transform3D(slot3d, m))

	markers := sdf.Union3D(
		handMarkers(apothem, Left, 0),
		handMarkers(apothem, Right, height),
	)
	return sdf.Difference3D(body, markers), nil
}
