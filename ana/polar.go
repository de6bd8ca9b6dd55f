// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// ScalarFunc defines a scalar field over the plane
type ScalarFunc func(x, y float64) float64

// DisplFunc defines a two-component displacement field over the plane
type DisplFunc func(x, y float64) (ux, uy float64)

// PolarRadius returns the field ρ = √(x²+y²) / a
func PolarRadius(a float64) ScalarFunc {
	return func(x, y float64) float64 {
		return math.Sqrt(x*x+y*y) / a
	}
}

// PolarAngle returns the field θ = atan2(y, x)
func PolarAngle() ScalarFunc {
	return func(x, y float64) float64 {
		return math.Atan2(y, x)
	}
}

// Compose joins two scalar fields into a displacement field
func Compose(fx, fy ScalarFunc) DisplFunc {
	return func(x, y float64) (ux, uy float64) {
		return fx(x, y), fy(x, y)
	}
}

// PolarToCartesian rotates polar displacement components (u_r, u_θ) at angle θ
func PolarToCartesian(θ, ur, ut float64) (ux, uy float64) {
	si, co := math.Sin(θ), math.Cos(θ)
	ux = ur*co - ut*si
	uy = ur*si + ut*co
	return
}

// CartesianToPolar computes displacement components w.r.t polar system from
// given Cartesian components at (x,y)
func CartesianToPolar(x, y, ux, uy float64) (r, ur, ut float64) {
	r = math.Sqrt(x*x + y*y)
	β := math.Atan2(y, x)
	si, co := math.Sin(β), math.Cos(β)
	ur = co*ux + si*uy
	ut = -si*ux + co*uy
	return
}
