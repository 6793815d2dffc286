// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "math"

// principal axes
const (
	AxisX = iota
	AxisY
	AxisZ
)

// Rotate returns point c rigidly rotated by angle [rad] about the line
// through pivot parallel to the given principal axis. Distances to the
// pivot line are preserved up to floating-point rounding.
func Rotate(c []float64, axis int, angle float64, pivot []float64) []float64 {
	u, v := (axis+1)%3, (axis+2)%3
	sin, cos := math.Sincos(angle)
	du, dv := c[u]-pivot[u], c[v]-pivot[v]
	r := []float64{c[0], c[1], c[2]}
	r[u] = pivot[u] + cos*du - sin*dv
	r[v] = pivot[v] + sin*du + cos*dv
	return r
}

// Translate returns point c displaced by d
func Translate(c, d []float64) []float64 {
	return []float64{c[0] + d[0], c[1] + d[1], c[2] + d[2]}
}
