// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/yanndaniel0027/MU5MES01-2020/ana"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_disk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disk01. read disk data")

	dat, err := ReadDisk("data", "disk01.eshelby")
	if err != nil {
		tst.Errorf("ReadDisk failed:\n%v", err)
		return
	}
	io.Pforan("%v", dat)

	chk.String(tst, dat.Desc, "stiff inclusion in a soft matrix")
	chk.String(tst, dat.FnKey, "disk01")
	chk.String(tst, dat.DirOut, "/tmp/eshelby")
	chk.Float64(tst, "γ", 1e-17, dat.Disk.Gamma(), 3)
	chk.Float64(tst, "χ", 1e-17, dat.Disk.Chi(), 0.5)
	chk.Float64(tst, "νi", 1e-17, dat.Disk.NuI(), 0.25)
	chk.Float64(tst, "νm", 1e-17, dat.Disk.NuM(), 0.35)
	chk.Float64(tst, "radius", 1e-17, dat.Radius, 1)
	chk.Float64(tst, "rmax", 1e-17, dat.Rmax, 4)
	chk.Array(tst, "rays", 1e-17, dat.Rays, []float64{0, 0.7853981633974483})
	if dat.Degree != 2 || dat.Npts != 9 {
		tst.Errorf("degree and npts are incorrect: %d, %d", dat.Degree, dat.Npts)
		return
	}
	if dat.Grid == nil || dat.Grid.Nx != 5 || dat.Grid.Ny != 5 {
		tst.Errorf("grid was not read correctly: %+v", dat.Grid)
		return
	}

	fld, err := dat.Field()
	if err != nil {
		tst.Errorf("Field failed:\n%v", err)
		return
	}
	ux, uy := fld.Displ(1.5, 0.7)
	chk.Float64(tst, "ux", 1e-10, ux, 0.81744621988933397)
	chk.Float64(tst, "uy", 1e-10, uy, 1.5751288377999217)
}

func Test_disk02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disk02. defaults")

	dat, err := ReadDisk("data", "disk02.eshelby")
	if err != nil {
		tst.Errorf("ReadDisk failed:\n%v", err)
		return
	}
	io.Pforan("%v", dat)

	chk.Float64(tst, "γ", 1e-17, dat.Disk.Gamma(), 2)
	chk.Float64(tst, "νm", 1e-17, dat.Disk.NuM(), 0.3)
	chk.Float64(tst, "radius", 1e-17, dat.Radius, 1)
	chk.Float64(tst, "rmax", 1e-17, dat.Rmax, 4)
	chk.Array(tst, "rays", 1e-17, dat.Rays, []float64{0})
	if dat.Degree != 4 || dat.Npts != 41 || dat.Grid != nil {
		tst.Errorf("defaults are incorrect: degree=%d npts=%d grid=%v", dat.Degree, dat.Npts, dat.Grid)
	}
}

func Test_disk03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disk03. errors")

	_, err := ReadDisk("data", "disk03.eshelby")
	var ierr *ana.InvalidParameterError
	if !errors.As(err, &ierr) {
		tst.Errorf("InvalidParameterError expected; got %v", err)
		return
	}
	chk.String(tst, ierr.Name, "E")

	_, err = ReadDisk("data", "not-found.eshelby")
	if err == nil {
		tst.Errorf("ReadDisk should fail with missing file")
		return
	}

	dat := DiskData{Npts: 1}
	if err = dat.PostProcess(); err == nil {
		tst.Errorf("PostProcess should fail with npts = 1")
		return
	}
	io.Pforan("%v\n", err)

	dat = DiskData{Grid: &GridData{Xmin: 1, Xmax: 0, Ymin: 0, Ymax: 1, Nx: 3, Ny: 3}}
	if err = dat.PostProcess(); err == nil {
		tst.Errorf("PostProcess should fail with invalid grid limits")
	}
}
