package main

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
)

// verifySTL reads an exported file back and rejects empty or non-finite
// geometry before it can reach a slicer.
func verifySTL(path string) error {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return err
	}
	if len(solid.Triangles) == 0 {
		return errors.New("no triangles")
	}
	for i, t := range solid.Triangles {
		if bad3F32(t.Normal) {
			return fmt.Errorf("triangle %d: non-finite normal", i)
		}
		for _, v := range t.Vertices {
			if bad3F32(v) {
				return fmt.Errorf("triangle %d: non-finite vertex", i)
			}
		}
	}
	return nil
}

func bad3F32(f stl.Vec3) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
