// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/cpmech/gosl/chk"

// JoinMode selects how Join resolves vertex identity at the interface
// between the two lattices
type JoinMode int

const (

	// SharedFace stitches lattice B's first axial layer onto lattice A's
	// last one, position for position; the interface is conforming
	SharedFace JoinMode = iota

	// Duplicated appends all of lattice B's vertices even where coordinates
	// coincide with lattice A's; the interface is non-conforming
	Duplicated

	// Stacked is Duplicated after translating lattice B flush onto lattice
	// A's top; for pairs whose face grids cannot match (e.g. cube+cylinder)
	Stacked
)

// Join assembles two lattices into one mesh with two blocks (ids 1 and 2).
// Lattice A keeps its vertex ids; lattice B's local ids are resolved through
// a transient stitch map built according to mode. The caller transforms b
// beforehand when a scenario requires misalignment.
func Join(a, b *Lattice, mode JoinMode, nameA, nameB string) (*Mesh, error) {

	// flush translation for heterogeneous stacking
	if mode == Stacked {
		_, ztopA := a.Zlimits()
		zbotB, _ := b.Zlimits()
		if gap := ztopA - zbotB; gap != 0 {
			shift := []float64{0, 0, gap}
			b.Transform(func(c []float64) []float64 { return Translate(c, shift) })
		}
	}

	// stitch map: local id in b => global id
	stitch := make([]int, len(b.Verts))
	nskip := 0 // leading b vertices aliased into a's range
	switch mode {
	case SharedFace:
		if a.G.W != b.G.W || a.G.H != b.G.H {
			return nil, chk.Err("incompatible interface: face grids do not match. A=%dx%d, B=%dx%d", a.G.W, a.G.H, b.G.W, b.G.H)
		}
		nskip = b.G.Layer()
		topA := (a.G.D - 1) * a.G.Layer()
		for l := range stitch {
			if l < nskip {
				stitch[l] = topA + l
			} else {
				stitch[l] = len(a.Verts) + l - nskip
			}
		}
	case Duplicated, Stacked:
		for l := range stitch {
			stitch[l] = len(a.Verts) + l
		}
	default:
		return nil, chk.Err("join mode %d is invalid", mode)
	}

	// global vertices
	var o Mesh
	o.Verts = make([]*Vert, 0, len(a.Verts)+len(b.Verts)-nskip)
	for _, v := range a.Verts {
		o.Verts = append(o.Verts, &Vert{v.Id, v.C})
	}
	for _, v := range b.Verts[nskip:] {
		o.Verts = append(o.Verts, &Vert{len(o.Verts), v.C})
	}

	// blocks
	blkA := &Block{1, nameA, "hex8", make([]*Cell, len(a.Cells))}
	for i, c := range a.Cells {
		blkA.Cells[i] = &Cell{i, append([]int(nil), c.Verts...)} // a's ids are already global
	}
	blkB := &Block{2, nameB, "hex8", make([]*Cell, len(b.Cells))}
	for i, c := range b.Cells {
		verts := make([]int, len(c.Verts))
		for m, l := range c.Verts {
			verts[m] = stitch[l]
		}
		blkB.Cells[i] = &Cell{i, verts}
	}
	o.Blocks = []*Block{blkA, blkB}
	o.CalcLimits()
	return &o, nil
}
