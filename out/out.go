// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of analytical displacement fields: sampling, reports and plotting
package out

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/yanndaniel0027/MU5MES01-2020/ana"
	"github.com/yanndaniel0027/MU5MES01-2020/inp"
	"gopkg.in/yaml.v3"
)

// Point holds the displacement at a sampling point
type Point struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Rho    float64 `yaml:"rho"`    // normalised radius
	Theta  float64 `yaml:"theta"`  // polar angle
	Ux     float64 `yaml:"ux"`     // x-displacement
	Uy     float64 `yaml:"uy"`     // y-displacement
	Branch string  `yaml:"branch"` // "inner" or "outer"
}

// Ray holds points along a ray starting at the centre of the inclusion
type Ray struct {
	Angle  float64  `yaml:"angle"`
	Points []*Point `yaml:"points"`
}

// Params holds the input parameters of the solution
type Params struct {
	Gamma  float64 `yaml:"gamma"`
	Chi    float64 `yaml:"chi"`
	NuI    float64 `yaml:"nui"`
	NuM    float64 `yaml:"num"`
	Radius float64 `yaml:"radius"`
	Degree int     `yaml:"degree"`
}

// Results holds sampled values of a displacement field
type Results struct {
	Desc      string          `yaml:"desc"`
	Params    Params          `yaml:"params"`
	Constants ana.Constants   `yaml:"constants"`
	Residual  float64         `yaml:"residual"`       // ‖M・x - b‖₂
	JumpF     float64         `yaml:"jump_F"`         // F(1⁺) - F(1⁻)
	JumpG     float64         `yaml:"jump_G"`         // G(1⁺) - G(1⁻)
	Rays      []*Ray          `yaml:"rays"`           // points along rays
	Grid      []*Point        `yaml:"grid,omitempty"` // points on grid
	Field     *ana.DisplField `yaml:"-"`
}

// NewPoint evaluates the field @ (x,y)
func NewPoint(fld *ana.DisplField, x, y float64) *Point {
	ρ := math.Sqrt(x*x+y*y) / fld.A
	p := &Point{X: x, Y: y, Rho: ρ, Theta: math.Atan2(y, x)}
	p.Ux, p.Uy = fld.Displ(x, y)
	p.Branch = ana.BranchOf(ρ).String()
	return p
}

// SampleRay samples the field at npts points along the ray with given angle, from 0 to rmax
func SampleRay(fld *ana.DisplField, angle, rmax float64, npts int) *Ray {
	R := utl.LinSpace(0, rmax, npts)
	co, si := math.Cos(angle), math.Sin(angle)
	ray := &Ray{Angle: angle, Points: make([]*Point, npts)}
	for i, r := range R {
		ray.Points[i] = NewPoint(fld, r*co, r*si)
	}
	return ray
}

// SampleGrid samples the field on a regular grid; points are ordered with x running faster
func SampleGrid(fld *ana.DisplField, g *inp.GridData) (res []*Point) {
	X := utl.LinSpace(g.Xmin, g.Xmax, g.Nx)
	Y := utl.LinSpace(g.Ymin, g.Ymax, g.Ny)
	res = make([]*Point, 0, g.Nx*g.Ny)
	for _, y := range Y {
		for _, x := range X {
			res = append(res, NewPoint(fld, x, y))
		}
	}
	return
}

// Sample computes the field given input data and samples it along rays and grid
func Sample(dat *inp.DiskData, verbose bool) (o *Results, err error) {

	// field
	fld, err := dat.Field()
	if err != nil {
		return
	}

	// results
	o = &Results{Desc: dat.Desc, Constants: fld.C, Field: fld}
	o.Params = Params{
		Gamma:  dat.Disk.Gamma(),
		Chi:    dat.Disk.Chi(),
		NuI:    dat.Disk.NuI(),
		NuM:    dat.Disk.NuM(),
		Radius: fld.A,
		Degree: fld.Degree,
	}
	o.Residual = dat.Disk.Residual(fld.C.Primary())
	o.JumpF, o.JumpG = fld.C.Jumps()
	if verbose {
		io.Pf("%v", fld.C)
		io.Pforan("residual = %g\n", o.Residual)
		io.Pforan("jumps @ interface: F: %g  G: %g\n", o.JumpF, o.JumpG)
	}

	// rays
	o.Rays = make([]*Ray, len(dat.Rays))
	for i, α := range dat.Rays {
		o.Rays[i] = SampleRay(fld, α, dat.Rmax, dat.Npts)
	}

	// grid
	if dat.Grid != nil {
		o.Grid = SampleGrid(fld, dat.Grid)
	}
	return
}

// Report returns a YAML document with all results
func (o *Results) Report() ([]byte, error) {
	return yaml.Marshal(o)
}

// Table returns a table with all sampled points
func (o *Results) Table() *bytes.Buffer {
	var buf bytes.Buffer
	io.Ff(&buf, "%8s%23s%23s%23s%23s%23s%23s\n", "ray", "x", "y", "rho", "theta", "ux", "uy")
	for i, ray := range o.Rays {
		for _, p := range ray.Points {
			io.Ff(&buf, "%8d%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e\n", i, p.X, p.Y, p.Rho, p.Theta, p.Ux, p.Uy)
		}
	}
	for _, p := range o.Grid {
		io.Ff(&buf, "%8s%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e\n", "grid", p.X, p.Y, p.Rho, p.Theta, p.Ux, p.Uy)
	}
	return &buf
}

// Save saves fnkey.yaml and fnkey.txt files into dirout
func (o *Results) Save(dirout, fnkey string, verbose bool) (err error) {
	b, err := o.Report()
	if err != nil {
		return
	}
	io.WriteStringToFileD(dirout, fnkey+".yaml", string(b))
	io.WriteFileD(dirout, fnkey+".txt", o.Table())
	if verbose {
		io.Pfblue2("file <%s/%s.yaml> written\n", dirout, fnkey)
		io.Pfblue2("file <%s/%s.txt> written\n", dirout, fnkey)
	}
	return
}
