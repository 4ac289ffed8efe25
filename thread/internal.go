package thread

import (
	"errors"
	"math"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// InternalParms defines an internal (female) metric thread. As with
// ExternalParms the zero value of every optional field is the common case.
// Internal radii are enlarged by a fixed clearance, so the matching bore
// has radius MajorRadius(Diameter, Pitch, true), very slightly more than
// Diameter/2.
type InternalParms struct {
	Diameter float64 // nominal thread diameter, e.g. 3.0 for M3x0.5
	Pitch    float64 // e.g. 0.5 for M3x0.5
	Length   float64 // axial extent of the threaded section
	ZStart   float64 // axial offset of the thread base
	Starts   int     // number of thread starts, 0 means 1

	// Chamfers bevel the crest at the thread angle, easing entry of the
	// mating thread. Same axial role as a lead-in on the male side, but
	// here material is cut away instead of led in.
	BottomChamfer bool
	TopChamfer    bool

	// Reliefs shorten the threaded section by a flat-root groove at the
	// affected end.
	BottomRelief bool
	TopRelief    bool

	// NoEpsilon disables the slight outward budge of the major radius.
	// The budge makes the thread root overlap the base tube wall.
	NoEpsilon bool

	// BaseTubeOD is the outer diameter of the base tube. The tube is
	// only rendered when the diameter sufficiently exceeds the thread,
	// namely BaseTubeOD > 2*MajorRadius(Diameter, Pitch, true);
	// otherwise it is ignored and the bare teeth are returned.
	BaseTubeOD float64
	// Base tube extension past the threaded section on each end.
	TubeExtendBottom float64
	TubeExtendTop    float64

	// Envelope emits the revolved bounding volume of the thread instead
	// of the cut thread.
	Envelope bool

	// LeftHand mirrors the finished thread for left hand engagement.
	LeftHand bool
}

// Internal returns the solid of an internal ISO metric thread over
// [ZStart, ZStart+Length], fused to a base tube when BaseTubeOD asks for
// one. An external thread of equal diameter, pitch and start count meshes
// with the result as built, with no relative transform.
func Internal(p InternalParms) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	starts := p.Starts
	if starts == 0 {
		starts = 1
	}
	zOff := ReliefWidth(p.Pitch) / 2
	tLength := p.Length
	if p.BottomRelief {
		tLength -= 2 * zOff
	}
	if p.TopRelief {
		tLength -= 2 * zOff
	}
	switch {
	case p.Diameter <= 0:
		return nil, errors.New("diameter <= 0")
	case p.Pitch <= 0:
		return nil, errors.New("pitch <= 0")
	case p.Length <= 0:
		return nil, errors.New("length <= 0")
	case starts < 0:
		return nil, errors.New("negative thread starts")
	case p.TubeExtendBottom < 0 || p.TubeExtendTop < 0:
		return nil, errors.New("negative tube extension")
	case tLength <= 0:
		return nil, ErrThreadTooShort
	}
	tStart := p.ZStart
	if p.BottomRelief {
		tStart += 2 * zOff
	}
	outerR := MajorRadius(p.Diameter, p.Pitch, true)
	innerR := MinorRadius(p.Diameter, p.Pitch, true)
	outerRAdj := outerR
	zBudge := 0.0
	if !p.NoEpsilon {
		// Kept smaller than the external budge: high values sometimes
		// make entire starts disappear.
		epsilon := zOff / 5 / math.Tan(threadAngle)
		outerRAdj = outerR + epsilon
		zBudge = math.Tan(threadAngle) * epsilon
	}

	var threads sdf.SDF3
	if p.Envelope {
		threads = envelope(innerR, outerRAdj, tLength, p.Pitch)
	} else {
		// Same trapezoid as the external thread, crest pointing inward.
		tooth := must2.NewPolygon()
		tooth.Add(-p.Pitch/2+zOff-zBudge, outerRAdj)
		tooth.Add(-zOff, innerR)
		tooth.Add(zOff, innerR)
		tooth.Add(p.Pitch/2-zOff+zBudge, outerRAdj)
		lead := p.Pitch * float64(starts)
		ridge := sweepProfile(must2.Polygon(tooth.Vertices()), lead, -p.Pitch/2, tLength+p.Pitch/2)
		threads = replicateStarts(ridge, starts)
		// Half a tooth of extra phase so the external threads align.
		threads = sdf.Transform3D(threads, sdf.RotateZ(math.Pi/float64(starts)))
	}

	side := math.Max(outerR*3, p.BaseTubeOD*1.125)
	threads = sdf.Difference3D(threads, endTrim(side, p.Pitch, -2*p.Pitch))

	if p.BottomChamfer {
		deltaR := outerR - innerR
		rise := math.Tan(threadAngle) * deltaR
		threads = sdf.Difference3D(threads, wedge(
			r2.Vec{X: innerR - deltaR, Y: 2 * rise},
			r2.Vec{X: outerR + deltaR, Y: -rise},
			r2.Vec{X: outerR + deltaR, Y: -p.Pitch - rise},
			r2.Vec{X: innerR - deltaR, Y: -p.Pitch - rise},
		))
	}

	haveTube := p.BaseTubeOD > outerR*2
	fuseEarly := haveTube && !p.TopRelief && p.TubeExtendTop == 0 && !p.Envelope
	if fuseEarly {
		h := p.Length + p.Pitch + p.TubeExtendBottom
		zBot := p.ZStart - tStart - p.TubeExtendBottom
		threads = sdf.Union3D(threads, baseTube(p.BaseTubeOD, outerR, h, zBot))
	}

	threads = sdf.Difference3D(threads, endTrim(side, p.Pitch, tLength))

	if p.TopChamfer {
		deltaR := outerR - innerR
		rise := math.Tan(threadAngle) * deltaR
		threads = sdf.Difference3D(threads, wedge(
			r2.Vec{X: innerR - deltaR, Y: tLength - 2*rise},
			r2.Vec{X: outerR + deltaR, Y: tLength + rise},
			r2.Vec{X: outerR + deltaR, Y: tLength + p.Pitch + rise},
			r2.Vec{X: innerR - deltaR, Y: tLength + p.Pitch + rise},
		))
	}

	threads = place(threads, tStart, p.Pitch*float64(starts), p.Envelope)

	if haveTube && !fuseEarly {
		h := p.Length + p.TubeExtendBottom + p.TubeExtendTop
		zBot := p.ZStart - p.TubeExtendBottom
		threads = sdf.Union3D(threads, baseTube(p.BaseTubeOD, outerR, h, zBot))
	}

	if p.LeftHand {
		threads = mirrorXZ{threads}
	}
	return threads, nil
}
