// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Branch indicates which expression of the radial profiles applies
type Branch int

const (
	Inner Branch = iota // ρ ≤ 1: inclusion
	Outer               // ρ > 1: matrix
)

// String returns the name of the branch
func (b Branch) String() string {
	if b == Outer {
		return "outer"
	}
	return "inner"
}

// BranchOf returns the branch corresponding to the normalised radius ρ
func BranchOf(ρ float64) Branch {
	if ρ > 1 {
		return Outer
	}
	return Inner
}

// Constants holds the integration constants of EshelbyDisk
//
//  matrix (ρ > 1):
//   F(ρ) = A₋₃/ρ³ + A₋₁/ρ + A₁・ρ + A₃・ρ³
//   G(ρ) = B₋₃/ρ³ + B₋₁/ρ + B₁・ρ + B₃・ρ³
//
//  inclusion (ρ ≤ 1):
//   F(ρ) = C₁・ρ + C₃・ρ³
//   G(ρ) = D₁・ρ + D₃・ρ³
type Constants struct {

	// solution of linear system
	Am3 float64 `yaml:"A_m3"` // A₋₃
	Am1 float64 `yaml:"A_m1"` // A₋₁
	A1  float64 `yaml:"A_1"`  // A₁
	A3  float64 `yaml:"A_3"`  // A₃
	C1  float64 `yaml:"C_1"`  // C₁
	C3  float64 `yaml:"C_3"`  // C₃

	// derived
	Bm3 float64 `yaml:"B_m3"` // B₋₃ = -A₋₃
	Bm1 float64 `yaml:"B_m1"` // B₋₁ = (1-2ν_m)/(2(1-ν_m))・A₋₁
	B1  float64 `yaml:"B_1"`  // B₁ = A₁
	B3  float64 `yaml:"B_3"`  // B₃ = (3-2ν_m)/(2ν_m)・A₃
	D1  float64 `yaml:"D_1"`  // D₁ = C₁
	D3  float64 `yaml:"D_3"`  // D₃ = (3-2ν_i)/(2ν_i)・C₃
}

// init sets the constants from the solution x of the linear system
func (o *Constants) init(x []float64, νi, νm float64) {
	o.Am3, o.Am1, o.A1, o.A3, o.C1, o.C3 = x[0], x[1], x[2], x[3], x[4], x[5]
	o.Bm3 = -o.Am3
	o.Bm1 = (1.0 - 2.0*νm) / 2.0 / (1.0 - νm) * o.Am1
	o.B1 = o.A1
	o.B3 = (3.0 - 2.0*νm) / 2.0 / νm * o.A3
	o.D1 = o.C1
	o.D3 = (3.0 - 2.0*νi) / 2.0 / νi * o.C3
}

// Primary returns {A₋₃, A₋₁, A₁, A₃, C₁, C₃}
func (o Constants) Primary() []float64 {
	return []float64{o.Am3, o.Am1, o.A1, o.A3, o.C1, o.C3}
}

// F computes the radial profile of u_r
func (o Constants) F(ρ float64) float64 {
	if BranchOf(ρ) == Outer {
		return o.Am3*math.Pow(ρ, -3) + o.Am1/ρ + o.A1*ρ + o.A3*math.Pow(ρ, 3)
	}
	return o.C1*ρ + o.C3*math.Pow(ρ, 3)
}

// G computes the radial profile of u_θ
func (o Constants) G(ρ float64) float64 {
	if BranchOf(ρ) == Outer {
		return o.Bm3*math.Pow(ρ, -3) + o.Bm1/ρ + o.B1*ρ + o.B3*math.Pow(ρ, 3)
	}
	return o.D1*ρ + o.D3*math.Pow(ρ, 3)
}

// Jumps returns F and G of the outer branch minus F and G of the inner branch at ρ = 1
func (o Constants) Jumps() (jF, jG float64) {
	jF = (o.Am3 + o.Am1 + o.A1 + o.A3) - (o.C1 + o.C3)
	jG = (o.Bm3 + o.Bm1 + o.B1 + o.B3) - (o.D1 + o.D3)
	return
}

// String returns a table with all constants
func (o Constants) String() string {
	l := io.Sf("%6s%23s%6s%23s\n", "", "matrix", "", "inclusion")
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "A₋₃", o.Am3, "", 0.0)
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "A₋₁", o.Am1, "", 0.0)
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "A₁", o.A1, "C₁", o.C1)
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "A₃", o.A3, "C₃", o.C3)
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "B₋₃", o.Bm3, "", 0.0)
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "B₋₁", o.Bm1, "", 0.0)
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "B₁", o.B1, "D₁", o.D1)
	l += io.Sf("%6s%23.15e%6s%23.15e\n", "B₃", o.B3, "D₃", o.D3)
	return l
}
