// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/yanndaniel0027/MU5MES01-2020/inp"
	"github.com/yanndaniel0027/MU5MES01-2020/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".eshelby", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nEshelby -- analytical solution of a disk inclusion\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot displacements", "doplot", doplot,
		))
	}

	// input data
	dir, fn := filepath.Split(fnamepath)
	dat, err := inp.ReadDisk(dir, fn)
	if err != nil {
		chk.Panic("cannot read input file:\n%v", err)
	}
	if verbose {
		io.Pf("%v\n", dat)
	}

	// solution
	res, err := out.Sample(dat, verbose)
	if err != nil {
		chk.Panic("cannot compute solution:\n%v", err)
	}

	// results
	err = res.Save(dat.DirOut, dat.FnKey, verbose)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
	if doplot {
		plt.Reset(false, nil)
		res.Draw(dat.DirOut, dat.FnKey)
	}
}
