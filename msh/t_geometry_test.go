// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func dist(p, q []float64) float64 {
	dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func Test_rot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rot01. rotation about principal axes")

	origin := []float64{0, 0, 0}

	// quarter turns about each axis
	chk.Array(tst, "z: x->y", 1e-15, Rotate([]float64{1, 0, 0}, AxisZ, math.Pi/2, origin), []float64{0, 1, 0})
	chk.Array(tst, "x: y->z", 1e-15, Rotate([]float64{0, 1, 0}, AxisX, math.Pi/2, origin), []float64{0, 0, 1})
	chk.Array(tst, "y: z->x", 1e-15, Rotate([]float64{0, 0, 1}, AxisY, math.Pi/2, origin), []float64{1, 0, 0})

	// off-centre pivot
	pivot := []float64{0.5, 0.5, 0}
	chk.Array(tst, "half turn", 1e-15, Rotate([]float64{1, 0, 0}, AxisZ, math.Pi, pivot), []float64{0, 1, 0})

	// points on the pivot line are fixed
	chk.Array(tst, "fixed point", 1e-15, Rotate([]float64{0.5, 0.5, 7}, AxisZ, 0.7, pivot), []float64{0.5, 0.5, 7})
}

func Test_rot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rot02. rotation preserves distances")

	pivot := []float64{0.3, -0.2, 0}
	angle := 0.7
	points := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0.2, 0.9, -0.5},
		{-1.5, 2.2, 3.1},
		{0.3, -0.2, 4},
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			p := Rotate(points[i], AxisZ, angle, pivot)
			q := Rotate(points[j], AxisZ, angle, pivot)
			chk.Float64(tst, "|p-q|", 1e-14, dist(p, q), dist(points[i], points[j]))
		}
	}
}

func Test_transform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transform01. lattice transforms")

	chk.Array(tst, "translate", 1e-15, Translate([]float64{1, 2, 3}, []float64{-1, 0.5, 2}), []float64{0, 2.5, 5})

	l, err := NewBoxLattice(1, 1, 2, 0, 0, 0, 1, 1, 2)
	if err != nil {
		tst.Errorf("NewBoxLattice failed:\n%v", err)
		return
	}
	shift := []float64{0, 0, 3}
	l.Transform(func(c []float64) []float64 { return Translate(c, shift) })
	zmin, zmax := l.Zlimits()
	chk.Float64(tst, "zmin", 1e-15, zmin, 3)
	chk.Float64(tst, "zmax", 1e-15, zmax, 5)
	checkcells(tst, "translated box", l.Verts, l.Cells)
}
