// Command turnbuckle generates the printable parts of a parametric
// turnbuckle and exports them as STL or 3MF meshes: the hex body and the
// left and right hand eye end fittings.
//
// The default build is a 100mm take-up turnbuckle on M10 coarse threads
// with 20mm hex stock and 8mm eyes:
//
//	turnbuckle
//	turnbuckle -takeup 60 -d 8 -preview
//
// Exported STL files are read back and checked for degenerate geometry
// before the command reports success.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/dalibor-frivaldsky/parametric-fff-printable-turnbuckle/iso"
	"github.com/dalibor-frivaldsky/parametric-fff-printable-turnbuckle/turnbuckle"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/helpers/matter"
	"github.com/soypat/sdf/render"
)

type config struct {
	takeUp   float64
	diameter float64
	pitch    float64
	fit      float64
	handle   float64
	eye      float64
	format   string
	outDir   string
	cells    int
	preview  bool
	shrink   bool
	only     string
}

type part struct {
	name  string
	solid sdf.SDF3
}

func main() {
	ancli.SetupSlog()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("turnbuckle", flag.ContinueOnError)
	var c config
	fs.Float64Var(&c.takeUp, "takeup", 100, "tensioning travel between the eye fittings, mm")
	fs.Float64Var(&c.diameter, "d", 10, "nominal ISO metric thread diameter, mm")
	fs.Float64Var(&c.pitch, "pitch", 0, "thread pitch, 0 selects the ISO coarse pitch for -d")
	fs.Float64Var(&c.fit, "fit", iso.FDM.Tolerance, "diameter adjustment per part compensating printer tolerance, mm")
	fs.Float64Var(&c.handle, "handle", 20, "body hex width across corners, mm")
	fs.Float64Var(&c.eye, "eye", 8, "inner radius of the eyes, mm")
	fs.StringVar(&c.format, "format", "stl", "export format, stl or 3mf")
	fs.StringVar(&c.outDir, "o", "", "output directory, defaults to build/<format>")
	fs.IntVar(&c.cells, "cells", 300, "octree render resolution along the longest axis")
	fs.BoolVar(&c.preview, "preview", false, "also rasterize a PNG preview of each part")
	fs.BoolVar(&c.shrink, "shrink", false, "scale parts up to counter PLA shrinkage")
	fs.StringVar(&c.only, "only", "", "export a single part: body, eye_end_fitting_left or eye_end_fitting_right")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if c.format != "stl" && c.format != "3mf" {
		ancli.Errf("unknown format %q, want stl or 3mf\n", c.format)
		return 1
	}
	if c.preview && c.format != "stl" {
		ancli.Errf("previews are rasterized from the exported stl, drop -format %s\n", c.format)
		return 1
	}
	if c.outDir == "" {
		c.outDir = filepath.Join("build", c.format)
	}

	parts, err := buildParts(c)
	if err != nil {
		ancli.Errf("%v\n", err)
		return 1
	}
	if err := os.MkdirAll(c.outDir, 0o755); err != nil {
		ancli.Errf("%v\n", err)
		return 1
	}
	exported := 0
	for _, p := range parts {
		if c.only != "" && p.name != c.only {
			continue
		}
		if err := export(c, p); err != nil {
			ancli.Errf("%s: %v\n", p.name, err)
			return 1
		}
		exported++
	}
	if exported == 0 {
		ancli.Errf("no part named %q\n", c.only)
		return 1
	}
	return 0
}

// buildParts assembles the three solids of one turnbuckle. The internal
// and external threads get the fit applied in opposite directions, so a
// printed pair meshes with twice the configured play.
func buildParts(c config) ([]part, error) {
	pitch := c.pitch
	if pitch == 0 {
		var err error
		pitch, err = iso.CoarsePitch(c.diameter)
		if err != nil {
			return nil, err
		}
	}
	fit := iso.Fit{Tolerance: c.fit}
	body, err := turnbuckle.Body(turnbuckle.BodyParms{
		TakeUp:         c.takeUp,
		ThreadDiameter: fit.Internal(c.diameter),
		ThreadPitch:    pitch,
		HandleDiameter: c.handle,
	})
	if err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}
	parts := []part{{name: "body", solid: body}}
	for _, hand := range []turnbuckle.Hand{turnbuckle.Left, turnbuckle.Right} {
		eye, err := turnbuckle.EyeFitting(turnbuckle.EyeFittingParms{
			ThreadDiameter: fit.External(c.diameter),
			ThreadPitch:    pitch,
			TakeUp:         c.takeUp,
			EyeInnerRadius: c.eye,
			Hand:           hand,
		})
		if err != nil {
			return nil, fmt.Errorf("%s eye fitting: %w", hand, err)
		}
		// Lay the fitting on its print flat, eye pointing along the bed.
		eye = sdf.Transform3D(eye, sdf.RotateX(-math.Pi/2))
		parts = append(parts, part{name: "eye_end_fitting_" + hand.String(), solid: eye})
	}
	if c.shrink {
		for i := range parts {
			parts[i].solid = matter.PLA.Scale(parts[i].solid)
		}
	}
	return parts, nil
}

func export(c config, p part) error {
	ancli.Noticef("meshing %s at %d cells\n", p.name, c.cells)
	path := filepath.Join(c.outDir, p.name+"."+c.format)
	r := render.NewOctreeRenderer(p.solid, c.cells)
	var err error
	switch c.format {
	case "stl":
		err = render.CreateSTL(path, r)
	case "3mf":
		err = render.Create3MF(path, r)
	}
	if err != nil {
		return err
	}
	if c.format == "stl" {
		if err := verifySTL(path); err != nil {
			return fmt.Errorf("verify %s: %w", path, err)
		}
	}
	ancli.Okf("wrote %s\n", path)
	if c.preview {
		png := strings.TrimSuffix(path, "."+c.format) + ".png"
		if err := stlToPNG(path, png, previewView); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		ancli.Okf("wrote %s\n", png)
	}
	return nil
}
