// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh generates structured hexahedral meshes for contact-detection
// test fixtures: box and cylinder lattices, rigid transforms, and the
// assembly of two lattices into one mesh with either a conforming (shared
// node) or a non-conforming (duplicated node) interface.
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data
type Vert struct {
	Id int       // 0-based id within mesh or lattice
	C  []float64 // coordinates (size==3)
}

// Cell holds one hex8 cell.
//  Verts follow the Exodus II HEX8 convention: vertices 0-3 form the bottom
//  quadrilateral counter-clockwise seen from outside the solid, vertices 4-7
//  the top quadrilateral in the same rotational order, each top vertex above
//  its bottom counterpart. Any other ordering inverts the cell.
type Cell struct {
	Id    int   // 0-based id within its block
	Verts []int // vertices (size==8)
}

// Block holds a group of cells sharing one topology; the id doubles as the
// material/part label downstream
type Block struct {
	Id    int     // Exodus block id (1-based, unique within mesh)
	Name  string  // part label; e.g. "cube_lower"
	Type  string  // topology; always "hex8" here
	Cells []*Cell // cells
}

// Mesh holds an assembled mesh
type Mesh struct {

	// essential
	Title  string   // descriptive title
	Verts  []*Vert  // all vertices; defines the global id space
	Blocks []*Block // element blocks in declaration order

	// derived
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate
}

// Nverts returns the total number of vertices
func (o *Mesh) Nverts() int {
	return len(o.Verts)
}

// Ncells returns the total number of cells over all blocks
func (o *Mesh) Ncells() (n int) {
	for _, b := range o.Blocks {
		n += len(b.Cells)
	}
	return
}

// Check verifies the referential invariant: every cell has 8 vertices, every
// referenced vertex id exists, and no block is empty
func (o *Mesh) Check() error {
	nv := len(o.Verts)
	if nv < 1 {
		return chk.Err("invalid mesh: no vertices")
	}
	if len(o.Blocks) < 1 {
		return chk.Err("invalid mesh: no blocks")
	}
	for _, b := range o.Blocks {
		if len(b.Cells) < 1 {
			return chk.Err("invalid mesh: block %d (%q) is empty", b.Id, b.Name)
		}
		for _, c := range b.Cells {
			if len(c.Verts) != 8 {
				return chk.Err("invalid mesh: cell %d of block %d has %d vertices", c.Id, b.Id, len(c.Verts))
			}
			for _, v := range c.Verts {
				if v < 0 || v >= nv {
					return chk.Err("invalid mesh: cell %d of block %d references vertex %d (nverts=%d)", c.Id, b.Id, v, nv)
				}
			}
		}
	}
	return nil
}

// CalcLimits computes the coordinate limits (min/max per axis)
func (o *Mesh) CalcLimits() {
	o.Xmin, o.Ymin, o.Zmin = o.Verts[0].C[0], o.Verts[0].C[1], o.Verts[0].C[2]
	o.Xmax, o.Ymax, o.Zmax = o.Xmin, o.Ymin, o.Zmin
	for _, v := range o.Verts {
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		o.Zmin = utl.Min(o.Zmin, v.C[2])
		o.Zmax = utl.Max(o.Zmax, v.C[2])
	}
}

// CoordsXYZ returns the coordinates as three flat per-axis arrays, the layout
// the Exodus writer consumes
func (o *Mesh) CoordsXYZ() (x, y, z []float64) {
	x = make([]float64, len(o.Verts))
	y = make([]float64, len(o.Verts))
	z = make([]float64, len(o.Verts))
	for i, v := range o.Verts {
		x[i], y[i], z[i] = v.C[0], v.C[1], v.C[2]
	}
	return
}

// Connectivity returns the flat connectivity array of this block. Vertex ids
// are converted to 1-based here and nowhere else; all in-memory ids stay
// 0-based.
func (o *Block) Connectivity() []int32 {
	res := make([]int32, 0, 8*len(o.Cells))
	for _, c := range o.Cells {
		for _, v := range c.Verts {
			res = append(res, int32(v+1))
		}
	}
	return res
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"c\":[", o.Id)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a one-line summary per block
func (o *Mesh) String() string {
	l := io.Sf("%q: %d verts, %d cells, %d blocks\n", o.Title, o.Nverts(), o.Ncells(), len(o.Blocks))
	for _, b := range o.Blocks {
		l += io.Sf("  block %d %q: %s, %d cells\n", b.Id, b.Name, b.Type, len(b.Cells))
	}
	return l
}
