package thread_test

import (
	"testing"

	"github.com/dalibor-frivaldsky/parametric-fff-printable-turnbuckle/thread"
	"github.com/soypat/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// inside reports whether the point is strictly inside the solid.
func inside(s sdf.SDF3, x, y, z float64) bool {
	return s.Evaluate(r3.Vec{X: x, Y: y, Z: z}) < 0
}

// An M3x0.5 rod threaded over [-0.85, 3.15] with a lead-in at the top.
// Radii: major 1.5, minor 1.1969. The thread starting below zero must not
// shift the teeth: at angle zero the crests sit at every multiple of the
// pitch regardless of where the thread begins.
func TestExternalM3OffsetStart(t *testing.T) {
	s, err := thread.External(thread.ExternalParms{
		Diameter:  3,
		Pitch:     0.5,
		Length:    4,
		ZStart:    -0.85,
		TopLeadIn: true,
	})
	require.NoError(t, err)

	// core and axial extent
	assert.True(t, inside(s, 0, 0, 0))
	assert.True(t, inside(s, 0, 0, 3.0))
	assert.False(t, inside(s, 0, 0, -0.95))
	assert.False(t, inside(s, 0, 0, 3.25))

	// crests on the pitch grid, valleys between
	assert.True(t, inside(s, 1.49, 0, -0.5))
	assert.True(t, inside(s, 1.49, 0, 1.0))
	assert.False(t, inside(s, 1.49, 0, -0.25))
	assert.False(t, inside(s, 1.49, 0, 1.25))

	// the top lead-in tapers the crest off below the thread end
	assert.True(t, inside(s, 1.49, 0, 2.5))
	assert.False(t, inside(s, 1.49, 0, 3.0))
	// while the root keeps running to the very end
	assert.True(t, inside(s, 1.19, 0, 3.1))

	// without the lead-in the crest runs out to the end
	s2, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, ZStart: -0.85,
	})
	require.NoError(t, err)
	assert.True(t, inside(s2, 1.49, 0, 3.0))
}

func TestExternalRejectsBadParms(t *testing.T) {
	good := thread.ExternalParms{Diameter: 3, Pitch: 0.5, Length: 4}
	for name, corrupt := range map[string]func(*thread.ExternalParms){
		"zero diameter":      func(p *thread.ExternalParms) { p.Diameter = 0 },
		"negative diameter":  func(p *thread.ExternalParms) { p.Diameter = -3 },
		"zero pitch":         func(p *thread.ExternalParms) { p.Pitch = 0 },
		"zero length":        func(p *thread.ExternalParms) { p.Length = 0 },
		"negative starts":    func(p *thread.ExternalParms) { p.Starts = -2 },
		"negative extension": func(p *thread.ExternalParms) { p.CylExtendBottom = -1 },
	} {
		p := good
		corrupt(&p)
		_, err := thread.External(p)
		assert.Error(t, err, name)
	}
	_, err := thread.External(good)
	assert.NoError(t, err)
}

func TestExternalThreadTooShort(t *testing.T) {
	p := thread.ExternalParms{
		Diameter:     3,
		Pitch:        0.5,
		Length:       0.14,
		BottomRelief: true,
		TopRelief:    true,
	}
	// both reliefs eat 0.075 each
	_, err := thread.External(p)
	assert.ErrorIs(t, err, thread.ErrThreadTooShort)

	p.Length = 0.15
	_, err = thread.External(p)
	assert.ErrorIs(t, err, thread.ErrThreadTooShort)

	p.Length = 0.16
	_, err = thread.External(p)
	assert.NoError(t, err)
}

func TestExternalReliefs(t *testing.T) {
	s, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, BottomRelief: true,
	})
	require.NoError(t, err)
	// teeth start above the groove, the base cylinder below is untouched
	assert.True(t, inside(s, 1.49, 0, 0.5))
	assert.False(t, inside(s, 1.49, 0, 0.02))
	assert.True(t, inside(s, 1.1, 0, 0.02))

	s, err = thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, TopRelief: true,
	})
	require.NoError(t, err)
	assert.True(t, inside(s, 1.49, 0, 3.5))
	assert.False(t, inside(s, 1.49, 0, 4.0))
	assert.True(t, inside(s, 1.1, 0, 3.95))
}

func TestExternalEnvelope(t *testing.T) {
	env, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, Envelope: true, NoBaseCylinder: true,
	})
	require.NoError(t, err)
	// solid annulus over the threaded band, hollow on the axis
	assert.True(t, inside(env, 1.3, 0, 0.25))
	assert.True(t, inside(env, 1.3, 0, 2))
	assert.False(t, inside(env, 0, 0, 2))
	assert.False(t, inside(env, 1.6, 0, 2))
	assert.False(t, inside(env, 1.3, 0, 4.1))
	assert.False(t, inside(env, 1.3, 0, -0.1))

	// the same point is a cut valley on the real thread
	cut, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, NoBaseCylinder: true,
	})
	require.NoError(t, err)
	assert.False(t, inside(cut, 1.3, 0, 0.25))
}

func TestExternalTwoStarts(t *testing.T) {
	s, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, Starts: 2,
	})
	require.NoError(t, err)
	// both ridges cross angle zero, half a lead apart
	assert.True(t, inside(s, 1.49, 0, 1.0))
	assert.True(t, inside(s, 1.49, 0, 1.5))
	assert.False(t, inside(s, 1.49, 0, 1.25))
}

func TestExternalDeterministic(t *testing.T) {
	parms := thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, ZStart: -0.85, TopLeadIn: true,
	}
	a, err := thread.External(parms)
	require.NoError(t, err)
	b, err := thread.External(parms)
	require.NoError(t, err)
	for _, p := range []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1.49, Y: 0, Z: 1.0},
		{X: 1.3, Y: 0.2, Z: 0.25},
		{X: 0.7, Y: -1.1, Z: 2.9},
		{X: 1.6, Y: 0, Z: -0.5},
	} {
		assert.Equal(t, a.Evaluate(p), b.Evaluate(p), "point %v", p)
	}
}

func TestExternalForceOuterRadius(t *testing.T) {
	s, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, ForceOuterRadius: 1.4,
	})
	require.NoError(t, err)
	assert.True(t, inside(s, 1.39, 0, 1.0))
	assert.False(t, inside(s, 1.45, 0, 1.0))

	natural, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4,
	})
	require.NoError(t, err)
	assert.True(t, inside(natural, 1.45, 0, 1.0))
}

func TestExternalCylinderExtensions(t *testing.T) {
	s, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, CylExtendBottom: 1,
	})
	require.NoError(t, err)
	assert.True(t, inside(s, 0.5, 0, -0.5))
	assert.False(t, inside(s, 0.5, 0, -1.05))
	assert.True(t, inside(s, 1.49, 0, 1.0))

	s, err = thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, CylExtendTop: 1,
	})
	require.NoError(t, err)
	// the bare shank runs past the teeth
	assert.True(t, inside(s, 0.5, 0, 4.5))
	assert.False(t, inside(s, 1.3, 0, 4.5))
	assert.False(t, inside(s, 0.5, 0, 5.05))
}

func TestExternalNoBaseCylinder(t *testing.T) {
	s, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, NoBaseCylinder: true,
	})
	require.NoError(t, err)
	assert.False(t, inside(s, 0, 0, 1))
	assert.False(t, inside(s, 1.1, 0, 1.25))
	assert.True(t, inside(s, 1.49, 0, 1.0))
}

func TestExternalNoEpsilon(t *testing.T) {
	// The budge pulls the tooth root from 1.1969 down to 1.1752, so a
	// probe at 1.19 lands on the tooth only when the budge is applied.
	budged, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, NoBaseCylinder: true,
	})
	require.NoError(t, err)
	assert.True(t, inside(budged, 1.19, 0, 1.0))

	exact, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, NoBaseCylinder: true, NoEpsilon: true,
	})
	require.NoError(t, err)
	assert.False(t, inside(exact, 1.19, 0, 1.0))
}

func TestExternalLeftHand(t *testing.T) {
	rh, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4,
	})
	require.NoError(t, err)
	lh, err := thread.External(thread.ExternalParms{
		Diameter: 3, Pitch: 0.5, Length: 4, LeftHand: true,
	})
	require.NoError(t, err)

	// the right hand ridge crosses +y a quarter lead up, the left hand
	// ridge crosses -y there
	assert.True(t, inside(rh, 0, 1.49, 0.125))
	assert.False(t, inside(rh, 0, -1.49, 0.125))
	assert.True(t, inside(lh, 0, -1.49, 0.125))
	assert.False(t, inside(lh, 0, 1.49, 0.125))

	// the core is mirror symmetric
	assert.True(t, inside(rh, 0, 0, 2))
	assert.True(t, inside(lh, 0, 0, 2))
}
