// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/mat"
)

// MaxCondition is the largest (estimated) condition number of the 6x6 system
// accepted by IntegrationConstants
var MaxCondition = 1e14

// EshelbyDisk implements the analytical solution to a circular inclusion
// embedded in an elastic matrix under pure shear (Eshelby's problem in 2D)
//
//             y ^
//               |      matrix: ν_m
//          , - -+- - ,
//        ,      |      ,          ρ = r / a
//       ,    .--+--.    ,         γ = outer boundary / a
//      ,    /   |   \    ,
//      ,---|----o----|---+--> x   u_r = F(ρ)・sin(2θ)
//      ,    \  ν_i  /    ,         u_θ = G(ρ)・cos(2θ)
//       ,    `--+--'    ,
//        ,      |      ,
//          ' - -+- - '
//
// The six integration constants (A₋₃, A₋₁, A₁, A₃) of the matrix and (C₁, C₃)
// of the inclusion are found from the interface and outer boundary conditions.
// Apart from Init, no method modifies an EshelbyDisk.
type EshelbyDisk struct {
	γ  float64 // ratio: outer boundary radius / inclusion radius
	χ  float64 // inclusion/matrix stiffness coupling
	νi float64 // Poisson's coefficient of inclusion
	νm float64 // Poisson's coefficient of matrix
}

// NewEshelbyDisk returns a new solution. Parameters are stored verbatim; see Validate
func NewEshelbyDisk(γ, χ, νi, νm float64) *EshelbyDisk {
	return &EshelbyDisk{γ: γ, χ: χ, νi: νi, νm: νm}
}

// Init initialises this structure from parameters
//  Names: "gamma", "chi", "nui" and "num"
func (o *EshelbyDisk) Init(prms dbf.Params) (err error) {

	// default values
	o.γ = 2.0
	o.χ = 1.0
	o.νi = 0.3
	o.νm = 0.3

	// parameters
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.γ = p.V
		case "chi":
			o.χ = p.V
		case "nui":
			o.νi = p.V
		case "num":
			o.νm = p.V
		default:
			return &InvalidParameterError{Name: p.N, Value: p.V, Reason: "unknown parameter; options are gamma, chi, nui and num"}
		}
	}
	return o.Validate()
}

// GetPrms gets (an example) of parameters
func (o EshelbyDisk) GetPrms() dbf.Params {
	return []*dbf.P{
		{N: "gamma", V: 2.0},
		{N: "chi", V: 1.0},
		{N: "nui", V: 0.3},
		{N: "num", V: 0.3},
	}
}

// Gamma returns γ
func (o EshelbyDisk) Gamma() float64 { return o.γ }

// Chi returns χ
func (o EshelbyDisk) Chi() float64 { return o.χ }

// NuI returns the Poisson's coefficient of the inclusion
func (o EshelbyDisk) NuI() float64 { return o.νi }

// NuM returns the Poisson's coefficient of the matrix
func (o EshelbyDisk) NuM() float64 { return o.νm }

// Validate checks the physical preconditions: 0 < ν_i, ν_m < 1 and γ > 0
func (o EshelbyDisk) Validate() error {
	if err := o.checkFinite(); err != nil {
		return err
	}
	if o.γ <= 0 {
		return &InvalidParameterError{Name: "gamma", Value: o.γ, Reason: "must be positive"}
	}
	if o.νi <= 0 || o.νi >= 1 {
		return &InvalidParameterError{Name: "nui", Value: o.νi, Reason: "must be in (0, 1)"}
	}
	if o.νm <= 0 || o.νm >= 1 {
		return &InvalidParameterError{Name: "num", Value: o.νm, Reason: "must be in (0, 1)"}
	}
	return nil
}

// LinearSystem computes the coefficient matrix M and right-hand side b whose
// solution are the integration constants {A₋₃, A₋₁, A₁, A₃, C₁, C₃}
//  Rows: (1,2) conditions at the outer boundary γ; (3,4) continuity of
//  displacements at the interface; (5,6) continuity of tractions
func (o EshelbyDisk) LinearSystem() (M *mat.Dense, b *mat.VecDense) {

	// auxiliary
	γ, χ, νi, νm := o.γ, o.χ, o.νi, o.νm
	γ2 := γ * γ
	γ4 := γ2 * γ2
	γ6 := γ4 * γ2

	// coefficients
	M = mat.NewDense(6, 6, []float64{
		2, 2 * γ2, 2 * γ4, 2 * γ6, 0, 0,
		2 * νm * (νm - 1), -γ2 * νm * (2*νm - 1), -2 * γ4 * νm * (νm - 1), γ6 * (νm - 1) * (2*νm - 3), 0, 0,
		1, 1, 1, 1, -1, -1,
		2 * νi * νm * (νm - 1), -νi * νm * (2*νm - 1), -2 * νi * νm * (νm - 1), νi * (νm - 1) * (2*νm - 3), 2 * νi * νm * (νm - 1), -νm * (2*νi - 3) * (νm - 1),
		3 * (νi + 1) * (νm - 1), -νi - 1, -(νi + 1) * (νm - 1), 0, χ * (νm - 1) * (νm + 1), 0,
		-6 * νi * νm * (νi + 1) * (νm - 1), νi * νm * (νi + 1), -2 * νi * νm * (νi + 1) * (νm - 1), -3 * νi * (νi + 1) * (νm - 1), 2 * χ * νi * νm * (νm - 1) * (νm + 1), 3 * χ * νm * (νm - 1) * (νm + 1),
	})

	// right-hand side
	b = mat.NewVecDense(6, []float64{2 * γ4, -2 * γ4 * νm * (νm - 1), 0, 0, 0, 0})
	return
}

// Solve solves the linear system and returns {A₋₃, A₋₁, A₁, A₃, C₁, C₃}
func (o EshelbyDisk) Solve() (x []float64, err error) {

	// check input
	if err = o.checkFinite(); err != nil {
		return
	}

	// factorise
	M, b := o.LinearSystem()
	var lu mat.LU
	lu.Factorize(M)
	det := lu.Det()
	cond := lu.Cond()
	if det == 0 || math.IsNaN(cond) || math.IsInf(cond, 0) || cond > MaxCondition {
		return nil, &SingularSystemError{Cond: cond, Det: det}
	}

	// solve
	X := mat.NewVecDense(6, nil)
	if e := lu.SolveVecTo(X, false, b); e != nil {
		return nil, &SingularSystemError{Cond: cond, Det: det, Err: e}
	}
	x = make([]float64, 6)
	for i := 0; i < 6; i++ {
		x[i] = X.AtVec(i)
	}
	return
}

// IntegrationConstants computes all twelve constants of the solution
func (o EshelbyDisk) IntegrationConstants() (c *Constants, err error) {
	x, err := o.Solve()
	if err != nil {
		return
	}
	c = new(Constants)
	c.init(x, o.νi, o.νm)
	return
}

// Residual computes ‖M・x - b‖₂
//  Note: returns NaN if len(x) != 6
func (o EshelbyDisk) Residual(x []float64) float64 {
	if len(x) != 6 {
		return math.NaN()
	}
	M, b := o.LinearSystem()
	var r mat.VecDense
	r.MulVec(M, mat.NewVecDense(len(x), x))
	r.SubVec(&r, b)
	return mat.Norm(&r, 2)
}

// Field returns the displacement field for an inclusion of radius a.
// degree is kept for consumers that interpolate the field (e.g. quadrature
// order); it does not change the analytical expression
func (o EshelbyDisk) Field(a float64, degree int) (f *DisplField, err error) {
	if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return nil, &InvalidParameterError{Name: "a", Value: a, Reason: "inclusion radius must be positive and finite"}
	}
	c, err := o.IntegrationConstants()
	if err != nil {
		return
	}
	return &DisplField{C: *c, A: a, Degree: degree}, nil
}

// DefaultField returns the displacement field with a = 1 and degree = 4
func (o EshelbyDisk) DefaultField() (*DisplField, error) {
	return o.Field(1.0, 4)
}

// checkFinite checks that all parameters are finite numbers
func (o EshelbyDisk) checkFinite() error {
	for _, p := range []struct {
		n string
		v float64
	}{{"gamma", o.γ}, {"chi", o.χ}, {"nui", o.νi}, {"num", o.νm}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return &InvalidParameterError{Name: p.n, Value: p.v, Reason: "must be finite"}
		}
	}
	return nil
}
