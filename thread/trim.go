package thread

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Boolean trim helpers shared by the external and internal generators.
// Revolved cross sections are given on the (radial, axial) plane.

// endTrim returns the oversized box cutter that squares off a thread end.
// It spans [zmin, zmin+2*pitch] axially and half of side in each of the
// four lateral directions. Both ends are always cut, otherwise the sweep
// overshoot past the working extent survives into the result.
func endTrim(side, pitch, zmin float64) sdf.SDF3 {
	box := must3.Box(r3.Vec{X: side, Y: side, Z: 2 * pitch}, 0)
	return sdf.Transform3D(box, sdf.Translate3D(r3.Vec{Z: zmin + pitch}))
}

// wedge revolves a four cornered cross section about the z-axis. Lead-in
// and chamfer tapers are cut with these.
func wedge(v0, v1, v2, v3 r2.Vec) sdf.SDF3 {
	q := must2.NewPolygon()
	q.AddV2(v0)
	q.AddV2(v1)
	q.AddV2(v2)
	q.AddV2(v3)
	return sdf.Revolve3D(must2.Polygon(q.Vertices()), 2*math.Pi)
}

// envelope returns the revolved bounding volume of the threaded band
// between the two radii, spanning one pitch of margin past each end. The
// margin is consumed by the end trims like everything else.
func envelope(rInner, rOuter, tLength, pitch float64) sdf.SDF3 {
	q := must2.NewPolygon()
	q.Add(rInner, -pitch)
	q.Add(rOuter, -pitch)
	q.Add(rOuter, tLength+pitch)
	q.Add(rInner, tLength+pitch)
	return sdf.Revolve3D(must2.Polygon(q.Vertices()), 2*math.Pi)
}

// baseCylinder returns the solid cylinder an external thread is fused to,
// spanning [zBot, zBot+height].
func baseCylinder(radius, height, zBot float64) sdf.SDF3 {
	cyl := must3.Cylinder(height, radius, 0)
	return sdf.Transform3D(cyl, sdf.Translate3D(r3.Vec{Z: zBot + height/2}))
}

// baseTube returns the annular tube an internal thread is fused to,
// spanning [zBot, zBot+height]. The bore radius is the thread's unbudged
// outer radius; the budged thread root reaches into the tube wall so the
// union has real overlap.
func baseTube(outerDiameter, boreRadius, height, zBot float64) sdf.SDF3 {
	ring := sdf.Difference2D(must2.Circle(outerDiameter/2), must2.Circle(boreRadius))
	tube := sdf.Extrude3D(ring, height)
	return sdf.Transform3D(tube, sdf.Translate3D(r3.Vec{Z: zBot + height/2}))
}
