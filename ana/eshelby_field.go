// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// DisplField implements the displacement field of EshelbyDisk
//
//   u_r = F(ρ)・sin(2θ)     u_x = u_r・cos(θ) - u_θ・sin(θ)
//   u_θ = G(ρ)・cos(2θ)     u_y = u_r・sin(θ) + u_θ・cos(θ)
//
// with ρ = |x| / a and θ = atan2(y, x)
type DisplField struct {
	C      Constants // integration constants
	A      float64   // radius of inclusion
	Degree int       // interpolation degree requested by consumers
}

// Radial computes the radial profiles F(ρ) and G(ρ)
func (o DisplField) Radial(ρ float64) (F, G float64) {
	return o.C.F(ρ), o.C.G(ρ)
}

// Polar computes the polar components of displacement @ (x,y)
func (o DisplField) Polar(x, y float64) (ur, ut float64) {
	ρ := math.Sqrt(x*x+y*y) / o.A
	θ := math.Atan2(y, x)
	ur = o.C.F(ρ) * math.Sin(2.0*θ)
	ut = o.C.G(ρ) * math.Cos(2.0*θ)
	return
}

// Displ computes the Cartesian components of displacement @ (x,y)
func (o DisplField) Displ(x, y float64) (ux, uy float64) {
	ur, ut := o.Polar(x, y)
	return PolarToCartesian(math.Atan2(y, x), ur, ut)
}

// Eval computes u @ x; len(u) and len(x) must be ≥ 2
func (o DisplField) Eval(u, x []float64) {
	u[0], u[1] = o.Displ(x[0], x[1])
}

// Func returns a closure with a copy of the constants
func (o DisplField) Func() DisplFunc {
	ρ := PolarRadius(o.A)
	θ := PolarAngle()
	c := o.C
	ur := func(x, y float64) float64 { return c.F(ρ(x, y)) * math.Sin(2.0*θ(x, y)) }
	ut := func(x, y float64) float64 { return c.G(ρ(x, y)) * math.Cos(2.0*θ(x, y)) }
	return Compose(
		func(x, y float64) float64 { return ur(x, y)*math.Cos(θ(x, y)) - ut(x, y)*math.Sin(θ(x, y)) },
		func(x, y float64) float64 { return ur(x, y)*math.Sin(θ(x, y)) + ut(x, y)*math.Cos(θ(x, y)) },
	)
}

// CompareDispl compares displacements
//  Output:
//   e -- absolute error for each component
func (o DisplField) CompareDispl(u, x []float64, tol float64, verbose bool) (e []float64) {

	// analytical solution
	ux, uy := o.Displ(x[0], x[1])

	// message
	if verbose {
		chk.PrintAnaNum("ux", tol, ux, u[0], verbose)
		chk.PrintAnaNum("uy", tol, uy, u[1], verbose)
	}

	// check displacements
	e = []float64{
		math.Abs(ux - u[0]),
		math.Abs(uy - u[1]),
	}
	return
}

// CheckDispl checks displacements
func (o DisplField) CheckDispl(tst *testing.T, u, x []float64, tol float64) {
	uana := make([]float64, 2)
	o.Eval(uana, x)
	chk.Array(tst, "u", tol, u[:2], uana)
}

// PlotDispl plots displacements along y=0 (horizontal line) and along the
// diagonal x=y, from the centre up to distance L
func (o DisplField) PlotDispl(L float64, npts int) {

	d := utl.LinSpace(0, L, npts)
	Ux := make([]float64, npts)
	Uy := make([]float64, npts)

	plt.Subplot(2, 1, 1)
	for i := 0; i < npts; i++ {
		Ux[i], Uy[i] = o.Displ(d[i], 0) // y=0
	}
	plt.Plot(d, Ux, &plt.A{C: "r", L: "$u_x$ @ $y=0$"})
	plt.Plot(d, Uy, &plt.A{C: "b", L: "$u_y$ @ $y=0$"})
	plt.Gll("$x$", "displacements", nil)

	plt.Subplot(2, 1, 2)
	c := math.Sqrt2 / 2.0
	for i := 0; i < npts; i++ {
		Ux[i], Uy[i] = o.Displ(c*d[i], c*d[i]) // x=y
	}
	plt.Plot(d, Ux, &plt.A{C: "r", L: "$u_x$ @ $x=y$"})
	plt.Plot(d, Uy, &plt.A{C: "b", L: "$u_y$ @ $x=y$"})
	plt.Gll("$r$", "displacements", nil)
}
