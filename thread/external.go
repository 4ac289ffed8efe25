package thread

import (
	"errors"
	"math"
	"runtime/debug"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ExternalParms defines an external (male) metric thread. The zero value of
// every optional field reproduces the common case: single start, right
// handed, epsilon budge applied, base cylinder included, no end treatments.
type ExternalParms struct {
	Diameter float64 // nominal thread diameter, e.g. 3.0 for M3x0.5
	Pitch    float64 // e.g. 0.5 for M3x0.5
	Length   float64 // axial extent of the threaded section
	ZStart   float64 // axial offset of the thread base
	Starts   int     // number of thread starts, 0 means 1

	// Lead-ins taper the crest at the thread angle so the mating part
	// finds engagement.
	BottomLeadIn bool
	TopLeadIn    bool

	// Reliefs shorten the threaded section by a flat-root groove at the
	// affected end. The groove is carved by not generating teeth there.
	BottomRelief bool
	TopRelief    bool

	// ForceOuterRadius overrides the natural major radius when positive.
	// Set close to Diameter/2; the crest flat widens to compensate.
	ForceOuterRadius float64

	// NoEpsilon disables the slight inward budge of the minor radius.
	// The budge makes the thread root overlap the base cylinder instead
	// of meeting it face to face, which keeps the union watertight.
	NoEpsilon bool

	// NoBaseCylinder omits the base cylinder at the minor radius.
	NoBaseCylinder bool
	// Base cylinder extension past the threaded section on each end.
	CylExtendBottom float64
	CylExtendTop    float64

	// Envelope emits the revolved bounding volume of the thread instead
	// of the cut thread, for clearance and interference checks.
	Envelope bool

	// LeftHand mirrors the finished thread for left hand engagement.
	LeftHand bool
}

// External returns the solid of an external ISO metric thread over
// [ZStart, ZStart+Length], fused to its base cylinder unless disabled.
// The result is a pure function of the parameters.
func External(p ExternalParms) (s sdf.SDF3, err error) {
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
	case p.CylExtendBottom < 0 || p.CylExtendTop < 0:
		return nil, errors.New("negative cylinder extension")
	case tLength <= 0:
		return nil, ErrThreadTooShort
	}
	tStart := p.ZStart
	if p.BottomRelief {
		tStart += 2 * zOff
	}
	naturalOuter := MajorRadius(p.Diameter, p.Pitch, false)
	outerR := naturalOuter
	if p.ForceOuterRadius > 0 {
		outerR = p.ForceOuterRadius
	}
	innerR := MinorRadius(p.Diameter, p.Pitch, false)
	innerRAdj := innerR
	zBudge := 0.0
	if !p.NoEpsilon {
		epsilon := zOff / 3 / math.Tan(threadAngle)
		innerRAdj = innerR - epsilon
		zBudge = math.Tan(threadAngle) * epsilon
	}

	var threads sdf.SDF3
	if p.Envelope {
		threads = envelope(innerRAdj, outerR, tLength, p.Pitch)
	} else {
		// Crest flat widening when the outer radius is forced under
		// the natural major radius: chopping the triangle lower makes
		// the flat wider.
		dMid := (naturalOuter - outerR) * math.Tan(threadAngle)
		tooth := must2.NewPolygon()
		tooth.Add(-p.Pitch/2+zOff-zBudge, innerRAdj)
		tooth.Add(-(zOff + dMid), outerR)
		tooth.Add(zOff+dMid, outerR)
		tooth.Add(p.Pitch/2-zOff+zBudge, innerRAdj)
		lead := p.Pitch * float64(starts)
		ridge := sweepProfile(must2.Polygon(tooth.Vertices()), lead, -p.Pitch/2, tLength+p.Pitch/2)
		threads = replicateStarts(ridge, starts)
	}

	threads = sdf.Difference3D(threads, endTrim(outerR*3, p.Pitch, -2*p.Pitch))

	if p.BottomLeadIn {
		deltaR := outerR - innerR
		rise := math.Tan(threadAngle) * deltaR
		threads = sdf.Difference3D(threads, wedge(
			r2.Vec{X: innerR - deltaR, Y: -rise},
			r2.Vec{X: outerR + deltaR, Y: 2 * rise},
			r2.Vec{X: outerR + deltaR, Y: -p.Pitch - rise},
			r2.Vec{X: innerR - deltaR, Y: -p.Pitch - rise},
		))
	}

	// Prefer fusing the base cylinder before the top trim: one pitch of
	// deliberate overbuild lets the trim square the cylinder and the
	// threads in a single cut, which keeps their shared top face clean.
	fuseEarly := !p.NoBaseCylinder && !p.TopRelief && p.CylExtendTop == 0 && !p.Envelope
	if fuseEarly {
		h := p.Length + p.Pitch + p.CylExtendBottom
		zBot := p.ZStart - tStart - p.CylExtendBottom
		threads = sdf.Union3D(threads, baseCylinder(innerR, h, zBot))
	}

	threads = sdf.Difference3D(threads, endTrim(outerR*3, p.Pitch, tLength))

	if p.TopLeadIn {
		deltaR := outerR - innerR
		rise := math.Tan(threadAngle) * deltaR
		threads = sdf.Difference3D(threads, wedge(
			r2.Vec{X: innerR - deltaR, Y: tLength + rise},
			r2.Vec{X: outerR + deltaR, Y: tLength - 2*rise},
			r2.Vec{X: outerR + deltaR, Y: tLength + p.Pitch + rise},
			r2.Vec{X: innerR - deltaR, Y: tLength + p.Pitch + rise},
		))
	}

	threads = place(threads, tStart, p.Pitch*float64(starts), p.Envelope)

	if !p.NoBaseCylinder && !fuseEarly {
		h := p.Length + p.CylExtendBottom + p.CylExtendTop
		zBot := p.ZStart - p.CylExtendBottom
		threads = sdf.Union3D(threads, baseCylinder(innerR, h, zBot))
	}

	if p.LeftHand {
		threads = mirrorXZ{threads}
	}
	return threads, nil
}
