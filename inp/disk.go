// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.eshelby) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/yanndaniel0027/MU5MES01-2020/ana"
)

// DiskData holds all data of an Eshelby disk problem
type DiskData struct {

	// input
	Desc   string     `json:"desc"`   // description
	Prms   dbf.Params `json:"prms"`   // parameters of ana.EshelbyDisk: gamma, chi, nui, num
	Radius float64    `json:"radius"` // radius of inclusion. default = 1
	Degree int        `json:"degree"` // interpolation degree. default = 4
	Rays   []float64  `json:"rays"`   // angles (radians) of rays where the field is sampled. default = {0}
	Rmax   float64    `json:"rmax"`   // largest distance along rays. default = 2・γ・radius
	Npts   int        `json:"npts"`   // number of points along each ray. default = 41
	Grid   *GridData  `json:"grid"`   // optional regular grid where the field is sampled
	DirOut string     `json:"dirout"` // output directory. default = /tmp/eshelby
	FnKey  string     `json:"fnkey"`  // key of output files. default = filename without extension

	// derived
	Disk *ana.EshelbyDisk // analytical solution
}

// GridData holds data of a regular grid over [xmin,xmax]×[ymin,ymax]
type GridData struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
	Nx   int     `json:"nx"`
	Ny   int     `json:"ny"`
}

// ReadDisk reads disk data from a .eshelby JSON file
func ReadDisk(dir, fn string) (o *DiskData, err error) {

	// read file
	fullpath := filepath.Join(dir, fn)
	if _, err = os.Stat(os.ExpandEnv(fullpath)); err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fullpath, err)
	}
	b := io.ReadFile(fullpath)

	// decode
	o = new(DiskData)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal %q:\n%v", fn, err)
	}

	// defaults and solution
	if o.FnKey == "" {
		o.FnKey = io.FnKey(fn)
	}
	err = o.PostProcess()
	return
}

// PostProcess sets default values, checks input and allocates the analytical solution
func (o *DiskData) PostProcess() (err error) {

	// solution
	o.Disk = new(ana.EshelbyDisk)
	err = o.Disk.Init(o.Prms)
	if err != nil {
		return
	}

	// default values
	if o.Radius == 0 {
		o.Radius = 1.0
	}
	if o.Degree == 0 {
		o.Degree = 4
	}
	if len(o.Rays) == 0 {
		o.Rays = []float64{0}
	}
	if o.Rmax == 0 {
		o.Rmax = 2.0 * o.Disk.Gamma() * o.Radius
	}
	if o.Npts == 0 {
		o.Npts = 41
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/eshelby"
	}

	// check
	if o.Radius < 0 || math.IsInf(o.Radius, 0) {
		return chk.Err("radius of inclusion must be positive. %g is invalid", o.Radius)
	}
	if o.Degree < 0 {
		return chk.Err("degree must be non-negative. %d is invalid", o.Degree)
	}
	if o.Rmax < 0 {
		return chk.Err("rmax must be positive. %g is invalid", o.Rmax)
	}
	if o.Npts < 2 {
		return chk.Err("npts must be at least 2. %d is invalid", o.Npts)
	}
	if o.Grid != nil {
		if o.Grid.Nx < 2 || o.Grid.Ny < 2 {
			return chk.Err("grid needs at least 2 points along each direction. nx=%d and ny=%d are invalid", o.Grid.Nx, o.Grid.Ny)
		}
		if o.Grid.Xmax <= o.Grid.Xmin || o.Grid.Ymax <= o.Grid.Ymin {
			return chk.Err("grid limits are invalid: [%g,%g]×[%g,%g]", o.Grid.Xmin, o.Grid.Xmax, o.Grid.Ymin, o.Grid.Ymax)
		}
	}
	return
}

// Field computes the displacement field
func (o DiskData) Field() (*ana.DisplField, error) {
	return o.Disk.Field(o.Radius, o.Degree)
}

// String returns a summary of the input data
func (o DiskData) String() string {
	l := io.Sf("desc   = %q\n", o.Desc)
	l += io.Sf("gamma  = %g\n", o.Disk.Gamma())
	l += io.Sf("chi    = %g\n", o.Disk.Chi())
	l += io.Sf("nui    = %g\n", o.Disk.NuI())
	l += io.Sf("num    = %g\n", o.Disk.NuM())
	l += io.Sf("radius = %g\n", o.Radius)
	l += io.Sf("degree = %d\n", o.Degree)
	l += io.Sf("rays   = %v\n", o.Rays)
	l += io.Sf("rmax   = %g\n", o.Rmax)
	l += io.Sf("npts   = %d\n", o.Npts)
	if o.Grid != nil {
		l += io.Sf("grid   = [%g,%g]×[%g,%g] (%d×%d)\n", o.Grid.Xmin, o.Grid.Xmax, o.Grid.Ymin, o.Grid.Ymax, o.Grid.Nx, o.Grid.Ny)
	}
	return l
}
