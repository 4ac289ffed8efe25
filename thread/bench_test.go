package thread_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dalibor-frivaldsky/parametric-fff-printable-turnbuckle/thread"
	"github.com/deadsy/sdfx/obj"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/soypat/sdf/render"
)

const benchQuality = 300

// Renders an M16x2 bolt with sdfx as the yardstick for the benchmark
// below.
func BenchmarkSDFXBolt(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	output := filepath.Join(b.TempDir(), "sdfx_bolt.stl")
	object, _ := obj.Bolt(&obj.BoltParms{
		Thread:      "M16x2",
		Style:       "hex",
		Tolerance:   0.1,
		TotalLength: 20,
		ShankLength: 10,
	})
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
}

func BenchmarkExternalThread(b *testing.B) {
	output := filepath.Join(b.TempDir(), "external_thread.stl")
	object, err := thread.External(thread.ExternalParms{
		Diameter: 16,
		Pitch:    2,
		Length:   20,
	})
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		render.CreateSTL(output, render.NewOctreeRenderer(object, benchQuality))
	}
}
