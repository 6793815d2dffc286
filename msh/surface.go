// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// facelocal lists the local vertices of each hex8 face, counter-clockwise
// seen from outside: bottom, top, front (y-), right (x+), back (y+), left (x-)
var facelocal = [6][4]int{
	{0, 3, 2, 1},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// Faces returns the 6 quadrilateral faces of this cell with global vertex ids
func (o *Cell) Faces() (faces [6][4]int) {
	for f, loc := range facelocal {
		for m, l := range loc {
			faces[f][m] = o.Verts[l]
		}
	}
	return
}

// canonface returns the canonical form of a quad face: rotated so the
// smallest vertex id comes first and reflected if that yields the smaller
// sequence. Two faces over the same vertex set map to the same key
// regardless of orientation.
func canonface(f [4]int) [4]int {
	p := 0
	for m := 1; m < 4; m++ {
		if f[m] < f[p] {
			p = m
		}
	}
	var fwd [4]int
	for m := 0; m < 4; m++ {
		fwd[m] = f[(p+m)%4]
	}
	rev := [4]int{fwd[0], fwd[3], fwd[2], fwd[1]}
	for m := 1; m < 4; m++ {
		if rev[m] != fwd[m] {
			if rev[m] < fwd[m] {
				return rev
			}
			return fwd
		}
	}
	return fwd
}

// BryFace is one boundary quadrilateral of the skinned mesh
type BryFace struct {
	BlockId int    // block owning the face
	CellId  int    // cell within the block
	Fid     int    // local face id (see facelocal)
	Verts   [4]int // global vertex ids, outward counter-clockwise
}

// Skin extracts the boundary faces of the mesh: faces belonging to exactly
// one cell. A conforming interface disappears from the skin because both
// sides reference the same vertices; a non-conforming (duplicated) interface
// leaves both blocks fully closed.
func (o *Mesh) Skin() []BryFace {
	count := make(map[[4]int]int)
	for _, b := range o.Blocks {
		for _, c := range b.Cells {
			for _, f := range c.Faces() {
				count[canonface(f)]++
			}
		}
	}
	var skin []BryFace
	for _, b := range o.Blocks {
		for _, c := range b.Cells {
			faces := c.Faces()
			for fid, f := range faces {
				if count[canonface(f)] == 1 {
					skin = append(skin, BryFace{b.Id, c.Id, fid, f})
				}
			}
		}
	}
	return skin
}
