package thread

import (
	"math"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// helix is the solid swept when a tooth profile travels along a helical
// path about the z-axis.
type helix struct {
	profile sdf.SDF2 // tooth cross section, x axial offset, y radius
	lead    float64  // axial advance per full turn
	zmin    float64  // clamped axial extent, consumed by the end trims
	zmax    float64
	bb      r3.Box
}

// sweepProfile sweeps one tooth cross section along a right-handed helix of
// the given lead. The ridge centerline crosses z = 0 at angle 0, so all
// phase bookkeeping can be done against the z-axis origin. The solid is
// clamped to [zmin, zmax]; the flat clamp faces differ from a swept wire's
// helical end faces, but both land inside the region the end trims remove.
func sweepProfile(profile sdf.SDF2, lead, zmin, zmax float64) sdf.SDF3 {
	s := helix{profile: profile, lead: lead, zmin: zmin, zmax: zmax}
	// The max-y axis of the profile bounding box is the outer radius of
	// the thread.
	r := profile.Bounds().Max.Y
	s.bb = r3.Box{Min: r3.Vec{X: -r, Y: -r, Z: zmin}, Max: r3.Vec{X: r, Y: r, Z: zmax}}
	return &s
}

// Evaluate returns the minimum distance to the swept ridge.
func (s *helix) Evaluate(p r3.Vec) float64 {
	// map the 3d point back to the xy space of the profile
	p0 := r2.Vec{}
	// the distance from the 3d z-axis maps to the 2d y-axis
	p0.Y = math.Hypot(p.X, p.Y)
	// the x/y angle and the z-height map to the 2d x-axis, the position
	// along the ridge's pitch period
	theta := math.Atan2(p.Y, p.X)
	z := p.Z - s.lead*theta/(2*math.Pi)
	p0.X = sawTooth(z, s.lead)
	d0 := s.profile.Evaluate(p0)
	// clamp the infinite helix to the working extent
	d1 := math.Max(s.zmin-p.Z, p.Z-s.zmax)
	return math.Max(d0, d1)
}

// Bounds returns the bounding box of the swept ridge.
func (s *helix) Bounds() r3.Box {
	return s.bb
}

// replicateStarts turns a single swept ridge into an n-start thread by
// unioning rotated copies, one per start. A single start is returned
// unchanged, no union performed.
func replicateStarts(ridge sdf.SDF3, starts int) sdf.SDF3 {
	if starts == 1 {
		return ridge
	}
	copies := make([]sdf.SDF3, starts)
	copies[0] = ridge
	for k := 1; k < starts; k++ {
		angle := 2 * math.Pi * float64(k) / float64(starts)
		copies[k] = sdf.Transform3D(ridge, sdf.RotateZ(angle))
	}
	return sdf.Union3D(copies...)
}

// place moves a finished thread into position. The translation is paired
// with a rotation matching the helix parameterization so the moved thread
// stays on the same helical channel; that is what lets mating threads align
// regardless of the axial start either was built with. Envelopes are
// rotationally symmetric and skip the rotation.
func place(s sdf.SDF3, tStart, lead float64, envelope bool) sdf.SDF3 {
	m := sdf.Translate3D(r3.Vec{Z: tStart})
	if !envelope {
		m = m.Mul(sdf.RotateZ(2 * math.Pi * tStart / lead))
	}
	return sdf.Transform3D(s, m)
}

// mirrorXZ reflects a solid across the XZ plane. Reflection is how a right
// hand thread becomes a left hand one; rotations cannot change handedness.
type mirrorXZ struct {
	s sdf.SDF3
}

func (m mirrorXZ) Evaluate(p r3.Vec) float64 {
	p.Y = -p.Y
	return m.s.Evaluate(p)
}

func (m mirrorXZ) Bounds() r3.Box {
	bb := m.s.Bounds()
	return r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: -bb.Max.Y, Z: bb.Min.Z},
		Max: r3.Vec{X: bb.Max.X, Y: -bb.Min.Y, Z: bb.Max.Z},
	}
}

func sawTooth(x, period float64) float64 {
	x += period / 2
	t := x / period
	return period*(t-math.Floor(t)) - period/2
}
