// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// Grid implements the linear addressing of a structured lattice with
// W x H x D positions per axis. The first axis runs fastest:
//  Id(i,j,k) = k*W*H + j*W + i
// Both lattice builders share this scheme; only the meaning of the axes
// changes (x/y/z for boxes, radial/circumferential/axial for cylinders).
type Grid struct {
	W int // number of positions along the first (fastest) axis
	H int // number of positions along the second axis
	D int // number of positions along the third (slowest) axis
}

// Size returns the total number of positions
func (o Grid) Size() int {
	return o.W * o.H * o.D
}

// Id returns the linear index of position (i,j,k)
func (o Grid) Id(i, j, k int) int {
	return k*o.W*o.H + j*o.W + i
}

// Layer returns the number of positions in one (i,j) layer
func (o Grid) Layer() int {
	return o.W * o.H
}
