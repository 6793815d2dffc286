// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// cellvol returns the scalar triple product of the three edges at corner 0;
// positive for right-handed hex8 ordering
func cellvol(verts []*Vert, c *Cell) float64 {
	p0 := verts[c.Verts[0]].C
	var e1, e3, e4 [3]float64
	for d := 0; d < 3; d++ {
		e1[d] = verts[c.Verts[1]].C[d] - p0[d]
		e3[d] = verts[c.Verts[3]].C[d] - p0[d]
		e4[d] = verts[c.Verts[4]].C[d] - p0[d]
	}
	return e1[0]*(e3[1]*e4[2]-e3[2]*e4[1]) -
		e1[1]*(e3[0]*e4[2]-e3[2]*e4[0]) +
		e1[2]*(e3[0]*e4[1]-e3[1]*e4[0])
}

// checkcells verifies that every cell references 8 distinct, in-range
// vertices and has positive volume
func checkcells(tst *testing.T, label string, verts []*Vert, cells []*Cell) {
	for _, c := range cells {
		ids := append([]int(nil), c.Verts...)
		sort.Ints(ids)
		for m, v := range ids {
			if v < 0 || v >= len(verts) {
				tst.Errorf("%s: cell %d references out-of-range vertex %d", label, c.Id, v)
				return
			}
			if m > 0 && ids[m-1] == v {
				tst.Errorf("%s: cell %d has duplicate vertex %d", label, c.Id, v)
				return
			}
		}
		if vol := cellvol(verts, c); vol <= 0 {
			tst.Errorf("%s: cell %d is inverted (vol=%g)", label, c.Id, vol)
			return
		}
	}
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. structured addressing")

	g := Grid{3, 4, 5}
	chk.IntAssert(g.Size(), 60)
	chk.IntAssert(g.Layer(), 12)
	chk.IntAssert(g.Id(0, 0, 0), 0)
	chk.IntAssert(g.Id(1, 2, 3), 43)
	chk.IntAssert(g.Id(2, 3, 4), 59)

	// every position maps to a unique id
	seen := make(map[int]bool)
	for k := 0; k < g.D; k++ {
		for j := 0; j < g.H; j++ {
			for i := 0; i < g.W; i++ {
				id := g.Id(i, j, k)
				if seen[id] {
					tst.Errorf("id %d assigned twice", id)
					return
				}
				seen[id] = true
			}
		}
	}
	chk.IntAssert(len(seen), 60)
}

func Test_box01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("box01. box lattice")

	l, err := NewBoxLattice(2, 3, 4, -1, 0, 2, 2, 3, 4)
	if err != nil {
		tst.Errorf("NewBoxLattice failed:\n%v", err)
		return
	}
	chk.IntAssert(len(l.Verts), 60)
	chk.IntAssert(len(l.Cells), 24)

	// interpolated coordinates
	chk.Array(tst, "vert 0", 1e-15, l.Verts[0].C, []float64{-1, 0, 2})
	chk.Array(tst, "vert 59", 1e-15, l.Verts[59].C, []float64{1, 3, 6})
	chk.Array(tst, "vert (1,1,1)", 1e-15, l.Verts[l.G.Id(1, 1, 1)].C, []float64{0, 1, 3})

	// topology
	checkcells(tst, "box", l.Verts, l.Cells)
	for _, c := range l.Cells {
		chk.Float64(tst, io.Sf("vol cell %d", c.Id), 1e-14, cellvol(l.Verts, c), 1.0)
	}

	// single-cell lattice: hex8 ordering
	u, err := NewBoxLattice(1, 1, 1, 0, 0, 0, 1, 1, 1)
	if err != nil {
		tst.Errorf("NewBoxLattice failed:\n%v", err)
		return
	}
	chk.IntAssert(len(u.Verts), 8)
	chk.IntAssert(len(u.Cells), 1)
	chk.Ints(tst, "unit cell", u.Cells[0].Verts, []int{0, 1, 3, 2, 4, 5, 7, 6})
}

func Test_box02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("box02. invalid subdivisions")

	if _, err := NewBoxLattice(0, 1, 1, 0, 0, 0, 1, 1, 1); err == nil {
		tst.Errorf("nx=0 must fail")
	}
	if _, err := NewBoxLattice(1, -1, 1, 0, 0, 0, 1, 1, 1); err == nil {
		tst.Errorf("ny=-1 must fail")
	}
	if _, err := NewBoxLattice(1, 1, 1, 0, 0, 0, 1, 1, 0); err == nil {
		tst.Errorf("lz=0 must fail")
	}
}

func Test_cyl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cyl01. cylinder lattice")

	l, err := NewCylinderLattice(5, 20, 10, 0.5, 1.0, 0.5, 0.5, 1.0)
	if err != nil {
		tst.Errorf("NewCylinderLattice failed:\n%v", err)
		return
	}
	chk.IntAssert(len(l.Verts), 1320) // (5+1)*20*(10+1)
	chk.IntAssert(len(l.Cells), 800)  // (5-1)*20*10
	checkcells(tst, "cylinder", l.Verts, l.Cells)

	// coordinates: axis, outer radius and axial range
	chk.Array(tst, "axis vert", 1e-15, l.Verts[l.G.Id(0, 7, 3)].C[:2], []float64{0.5, 0.5})
	chk.Array(tst, "outer vert theta=0", 1e-15, l.Verts[l.G.Id(5, 0, 0)].C, []float64{1.0, 0.5, 1.0})
	zmin, zmax := l.Zlimits()
	chk.Float64(tst, "zmin", 1e-15, zmin, 1.0)
	chk.Float64(tst, "zmax", 1e-15, zmax, 2.0)

	// first cell of the first band
	chk.Ints(tst, "cell 0", l.Cells[0].Verts, []int{1, 2, 8, 7, 121, 122, 128, 127})

	// ring closure: the last circumferential position connects back to 0
	last := l.Cells[19*4].Verts // k=0, j=19, i=1
	chk.Ints(tst, "seam cell", last, []int{115, 116, 2, 1, 235, 236, 122, 121})

	// innermost band skipped: no cell references two axis vertices
	for _, c := range l.Cells {
		for _, v := range c.Verts {
			if v%l.G.W == 0 {
				tst.Errorf("cell %d references axis vertex %d", c.Id, v)
				return
			}
		}
	}
}

func Test_cyl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cyl02. invalid subdivisions")

	if _, err := NewCylinderLattice(1, 20, 10, 0.5, 1, 0, 0, 0); err == nil {
		tst.Errorf("nr=1 must fail")
	}
	if _, err := NewCylinderLattice(5, 2, 10, 0.5, 1, 0, 0, 0); err == nil {
		tst.Errorf("nc=2 must fail")
	}
	if _, err := NewCylinderLattice(5, 20, 0, 0.5, 1, 0, 0, 0); err == nil {
		tst.Errorf("nh=0 must fail")
	}
	if _, err := NewCylinderLattice(5, 20, 10, -0.5, 1, 0, 0, 0); err == nil {
		tst.Errorf("radius<0 must fail")
	}
}
