// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/yanndaniel0027/MU5MES01-2020/inp"
	"gopkg.in/yaml.v3"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func homogeneous(tst *testing.T) *inp.DiskData {
	dat := &inp.DiskData{
		Desc:  "homogeneous",
		Prms:  []*dbf.P{{N: "gamma", V: 2}, {N: "chi", V: 1}},
		Rays:  []float64{0, math.Pi / 4},
		Rmax:  4,
		Npts:  5,
		Grid:  &inp.GridData{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1, Nx: 5, Ny: 3},
		FnKey: "homogeneous",
	}
	err := dat.PostProcess()
	if err != nil {
		tst.Fatalf("PostProcess failed:\n%v", err)
	}
	return dat
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. sampling")

	dat := homogeneous(tst)
	res, err := Sample(dat, chk.Verbose)
	if err != nil {
		tst.Errorf("Sample failed:\n%v", err)
		return
	}

	if len(res.Rays) != 2 {
		tst.Errorf("there should be 2 rays; got %d", len(res.Rays))
		return
	}
	for _, ray := range res.Rays {
		if len(ray.Points) != 5 {
			tst.Errorf("there should be 5 points along ray; got %d", len(ray.Points))
			return
		}
		chk.Array(tst, "r", 1e-14, RayDistances(ray), []float64{0, 1, 2, 3, 4})
		for _, p := range ray.Points {
			chk.Float64(tst, "ux", 1e-13, p.Ux, p.Y)
			chk.Float64(tst, "uy", 1e-13, p.Uy, p.X)
		}
	}
	chk.String(tst, res.Rays[0].Points[1].Branch, "inner")
	chk.String(tst, res.Rays[0].Points[2].Branch, "outer")

	// grid
	if len(res.Grid) != 15 {
		tst.Errorf("there should be 15 grid points; got %d", len(res.Grid))
		return
	}
	chk.Float64(tst, "x[1]", 1e-15, res.Grid[1].X, -1)
	chk.Float64(tst, "y[1]", 1e-15, res.Grid[1].Y, -1)
	chk.Float64(tst, "x[5]", 1e-15, res.Grid[5].X, -2)
	chk.Float64(tst, "y[5]", 1e-15, res.Grid[5].Y, 0)

	// constants and checks
	chk.Float64(tst, "A₁", 1e-12, res.Constants.A1, 1)
	chk.Float64(tst, "C₁", 1e-12, res.Constants.C1, 1)
	chk.Float64(tst, "jump(F)", 1e-12, res.JumpF, 0)
	chk.Float64(tst, "jump(G)", 1e-12, res.JumpG, 0)
	if res.Residual > 1e-9 {
		tst.Errorf("residual is too large: %g", res.Residual)
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		res.Draw("/tmp/eshelby", "test_out01")
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. report and table")

	dat := homogeneous(tst)
	res, err := Sample(dat, false)
	if err != nil {
		tst.Errorf("Sample failed:\n%v", err)
		return
	}

	// report
	b, err := res.Report()
	if err != nil {
		tst.Errorf("Report failed:\n%v", err)
		return
	}
	io.Pforan("%s\n", b)
	var rep struct {
		Desc      string             `yaml:"desc"`
		Params    map[string]float64 `yaml:"params"`
		Constants map[string]float64 `yaml:"constants"`
		Rays      []interface{}      `yaml:"rays"`
	}
	err = yaml.Unmarshal(b, &rep)
	if err != nil {
		tst.Errorf("cannot unmarshal report:\n%v", err)
		return
	}
	chk.String(tst, rep.Desc, "homogeneous")
	chk.Float64(tst, "gamma", 1e-17, rep.Params["gamma"], 2)
	chk.Float64(tst, "degree", 1e-17, rep.Params["degree"], 4)
	chk.Float64(tst, "A_1", 1e-12, rep.Constants["A_1"], 1)
	chk.Float64(tst, "D_1", 1e-12, rep.Constants["D_1"], 1)
	if len(rep.Constants) != 12 || len(rep.Rays) != 2 {
		tst.Errorf("report is incomplete: %d constants and %d rays", len(rep.Constants), len(rep.Rays))
		return
	}

	// table
	lines := strings.Split(strings.TrimSpace(res.Table().String()), "\n")
	if len(lines) != 1+2*5+15 {
		tst.Errorf("table should have 26 lines; got %d", len(lines))
		return
	}

	// files
	err = res.Save("/tmp/eshelby", dat.FnKey, chk.Verbose)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	c := io.ReadFile("/tmp/eshelby/homogeneous.yaml")
	chk.String(tst, string(c), string(b))
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. read, sample and save example")

	dat, err := inp.ReadDisk("../examples/disk_inclusion", "disk.eshelby")
	if err != nil {
		tst.Errorf("ReadDisk failed:\n%v", err)
		return
	}
	res, err := Sample(dat, chk.Verbose)
	if err != nil {
		tst.Errorf("Sample failed:\n%v", err)
		return
	}

	// point (2,0) on the first ray
	p := res.Rays[0].Points[4]
	chk.Float64(tst, "x", 1e-15, p.X, 2)
	chk.Float64(tst, "ux", 1e-13, p.Ux, 0)
	chk.Float64(tst, "uy", 1e-12, p.Uy, 1.9890552069160752)
	chk.Float64(tst, "A₋₃", 1e-12, res.Constants.Am3, -0.22825506388445291)

	// files
	dirout := filepath.Join(os.TempDir(), "eshelby_out03")
	err = res.Save(dirout, dat.FnKey, chk.Verbose)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	for _, ext := range []string{".yaml", ".txt"} {
		if _, err = os.Stat(filepath.Join(dirout, "disk"+ext)); err != nil {
			tst.Errorf("file disk%s should exist:\n%v", ext, err)
			return
		}
	}
	lines := strings.Split(strings.TrimSpace(string(io.ReadFile(filepath.Join(dirout, "disk.txt")))), "\n")
	if len(lines) != 1+2*9+25 {
		tst.Errorf("table should have 44 lines; got %d", len(lines))
		return
	}

	// missing input file
	_, err = inp.ReadDisk("../examples/disk_inclusion", "not-found.eshelby")
	if err == nil {
		tst.Errorf("ReadDisk should fail with missing file")
		return
	}
	io.Pforan("%v\n", err)
}
