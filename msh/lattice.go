// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Lattice holds one structured hexahedral solid with local 0-based vertex
// ids. Lattices are the raw material of Join; they never leave this package
// unassembled.
type Lattice struct {
	G     Grid    // structured addressing of vertices
	Verts []*Vert // vertices
	Cells []*Cell // hex8 cells referencing local vertex ids
}

// NewBoxLattice builds a regular lattice over the axis-aligned box with
// origin (x0,y0,z0) and extents (lx,ly,lz), subdivided nx x ny x nz times.
// It produces (nx+1)(ny+1)(nz+1) vertices and nx*ny*nz right-handed cells.
func NewBoxLattice(nx, ny, nz int, x0, y0, z0, lx, ly, lz float64) (*Lattice, error) {

	// check
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("invalid subdivision: counts must be positive. nx=%d, ny=%d, nz=%d", nx, ny, nz)
	}
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, chk.Err("invalid subdivision: extents must be positive. lx=%g, ly=%g, lz=%g", lx, ly, lz)
	}

	// vertices
	var o Lattice
	o.G = Grid{nx + 1, ny + 1, nz + 1}
	xx := utl.LinSpace(x0, x0+lx, nx+1)
	yy := utl.LinSpace(y0, y0+ly, ny+1)
	zz := utl.LinSpace(z0, z0+lz, nz+1)
	o.Verts = make([]*Vert, o.G.Size())
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				id := o.G.Id(i, j, k)
				o.Verts[id] = &Vert{id, []float64{xx[i], yy[j], zz[k]}}
			}
		}
	}

	// cells: one per unit cube (i,j,k)
	o.Cells = make([]*Cell, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				n0 := o.G.Id(i, j, k)
				n4 := o.G.Id(i, j, k+1)
				o.Cells = append(o.Cells, &Cell{len(o.Cells), []int{
					n0, n0 + 1, n0 + o.G.W + 1, n0 + o.G.W,
					n4, n4 + 1, n4 + o.G.W + 1, n4 + o.G.W,
				}})
			}
		}
	}
	return &o, nil
}

// NewCylinderLattice builds a cylindrical lattice with nr radial, nc
// circumferential and nh axial subdivisions, radius and height as given,
// axis vertical through (cx,cy) and base at z0. Vertices occupy (nr+1)
// radial layers x nc angular positions x (nh+1) axial layers; the angle
// wraps at position nc so the ring closes through the connectivity alone.
// The innermost radial band is skipped to avoid degenerate cells at the
// axis, leaving (nr-1)*nc*nh cells; the axis vertices remain in the lattice
// unreferenced.
func NewCylinderLattice(nr, nc, nh int, radius, height, cx, cy, z0 float64) (*Lattice, error) {

	// check
	if nr < 2 || nc < 3 || nh < 1 {
		return nil, chk.Err("invalid subdivision: need nr>=2, nc>=3 and nh>=1. nr=%d, nc=%d, nh=%d", nr, nc, nh)
	}
	if radius <= 0 || height <= 0 {
		return nil, chk.Err("invalid subdivision: extents must be positive. radius=%g, height=%g", radius, height)
	}

	// vertices
	var o Lattice
	o.G = Grid{nr + 1, nc, nh + 1}
	rr := utl.LinSpace(0, radius, nr+1)
	zz := utl.LinSpace(z0, z0+height, nh+1)
	o.Verts = make([]*Vert, o.G.Size())
	for k := 0; k <= nh; k++ {
		for j := 0; j < nc; j++ {
			sin, cos := math.Sincos(2.0 * math.Pi * float64(j) / float64(nc))
			for i := 0; i <= nr; i++ {
				id := o.G.Id(i, j, k)
				o.Verts[id] = &Vert{id, []float64{cx + rr[i]*cos, cy + rr[i]*sin, zz[k]}}
			}
		}
	}

	// cells: radial bands 1..nr-1, ring closed modulo nc
	ring := o.G.Layer()
	o.Cells = make([]*Cell, 0, (nr-1)*nc*nh)
	for k := 0; k < nh; k++ {
		for j := 0; j < nc; j++ {
			jnext := (j + 1) % nc
			for i := 1; i < nr; i++ {
				n0 := o.G.Id(i, j, k)
				n3 := o.G.Id(i, jnext, k)
				o.Cells = append(o.Cells, &Cell{len(o.Cells), []int{
					n0, n0 + 1, n3 + 1, n3,
					n0 + ring, n0 + ring + 1, n3 + ring + 1, n3 + ring,
				}})
			}
		}
	}
	return &o, nil
}

// Transform applies fn to every vertex coordinate; e.g. a rotation before a
// duplicated-interface assembly
func (o *Lattice) Transform(fn func(c []float64) []float64) {
	for _, v := range o.Verts {
		v.C = fn(v.C)
	}
}

// Zlimits returns the axial coordinate range of the lattice
func (o *Lattice) Zlimits() (zmin, zmax float64) {
	zmin, zmax = o.Verts[0].C[2], o.Verts[0].C[2]
	for _, v := range o.Verts {
		zmin = utl.Min(zmin, v.C[2])
		zmax = utl.Max(zmax, v.C[2])
	}
	return
}
