// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gen holds the catalog of synthetic contact scenarios and the
// driver that turns them into Exodus II fixture files plus a JSON manifest.
package gen

import (
	"math"
	"os"
	"path/filepath"

	"github.com/rndubs/contact-detector/exo"
	"github.com/rndubs/contact-detector/msh"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Title is stored in every fixture file
const Title = "Test mesh for contact detection"

// Fixture defines one synthetic contact scenario
type Fixture struct {
	Fnkey string // filename key; e.g. "single_hex_contact"
	Descr string // what the scenario stresses
	Make  func() (*msh.Mesh, error)
}

// All returns the catalog of fixtures consumed by the contact-detection tests
func All() []Fixture {
	return []Fixture{
		{"single_hex_contact", "two unit hexes sharing one face", singleHex},
		{"aligned_cubes_10x10x10", "two 10x10x10 cubes, conforming interface", alignedCubes},
		{"rotated_cube_contact", "upper cube rotated 45 deg, non-conforming interface", rotatedCubes},
		{"cube_cylinder_contact", "cylinder base resting on cube top", cubeCylinder},
	}
}

// singleHex builds two 1x1x1-element unit cubes sharing one face
func singleHex() (*msh.Mesh, error) {
	a, err := msh.NewBoxLattice(1, 1, 1, 0, 0, 0, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	b, err := msh.NewBoxLattice(1, 1, 1, 0, 0, 1, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	return msh.Join(a, b, msh.SharedFace, "cube_lower", "cube_upper")
}

// alignedCubes builds two 10x10x10-element unit cubes sharing one face
func alignedCubes() (*msh.Mesh, error) {
	a, err := msh.NewBoxLattice(10, 10, 10, 0, 0, 0, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	b, err := msh.NewBoxLattice(10, 10, 10, 0, 0, 1, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	return msh.Join(a, b, msh.SharedFace, "cube_lower", "cube_upper")
}

// rotatedCubes builds two 10x10x10-element unit cubes with the upper one
// rotated 45 degrees about the vertical through the interface centre, so the
// contact surface is geometrically misaligned and no vertices are shared
func rotatedCubes() (*msh.Mesh, error) {
	a, err := msh.NewBoxLattice(10, 10, 10, 0, 0, 0, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	b, err := msh.NewBoxLattice(10, 10, 10, 0, 0, 1, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	pivot := []float64{0.5, 0.5, 0}
	b.Transform(func(c []float64) []float64 { return msh.Rotate(c, msh.AxisZ, math.Pi/4.0, pivot) })
	return msh.Join(a, b, msh.Duplicated, "cube_lower", "cube_upper")
}

// cubeCylinder builds a 10x10x10-element unit cube with a cylinder (nr=5,
// nc=20, nh=10, R=0.5, H=1) resting flat on its top face. The base placement
// is best-effort: the cylinder sits exactly at the cube's top plane but its
// vertices are not snapped to the cube's grid.
func cubeCylinder() (*msh.Mesh, error) {
	a, err := msh.NewBoxLattice(10, 10, 10, 0, 0, 0, 1, 1, 1)
	if err != nil {
		return nil, err
	}
	b, err := msh.NewCylinderLattice(5, 20, 10, 0.5, 1.0, 0.5, 0.5, 1.0)
	if err != nil {
		return nil, err
	}
	return msh.Join(a, b, msh.Stacked, "cube", "cylinder")
}

// Run generates the given fixtures into dirout and writes the manifest.
// A failing fixture is reported and skipped; the remaining fixtures are
// still generated. Run returns an error if any fixture failed.
func Run(dirout string, fixtures []Fixture, verbose bool) error {

	// output directory
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}

	// generate each fixture independently
	var infos []FixtureInfo
	nfailed := 0
	for _, fix := range fixtures {
		m, err := fix.Make()
		if err != nil {
			io.PfRed("%s: %v\n", fix.Fnkey, err)
			nfailed++
			continue
		}
		m.Title = Title
		fnamepath := filepath.Join(dirout, fix.Fnkey+".exo")
		if err = exo.Write(fnamepath, m); err != nil {
			io.PfRed("%s: %v\n", fix.Fnkey, err)
			nfailed++
			continue
		}
		if verbose {
			io.Pf("wrote %s\n", fnamepath)
			io.Pf("  %v", m)
		}
		infos = append(infos, NewFixtureInfo(fix, m))
	}

	// manifest
	if err := WriteManifest(dirout, infos); err != nil {
		return err
	}
	if nfailed > 0 {
		return chk.Err("%d fixture(s) failed", nfailed)
	}
	return nil
}
