// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Colors holds the colors of rays in plots
var Colors = []string{"r", "b", "g", "m", "orange", "c", "k"}

// RayDistances returns the distances from the centre of all points along ray
func RayDistances(ray *Ray) (R []float64) {
	R = make([]float64, len(ray.Points))
	for i, p := range ray.Points {
		R[i] = math.Sqrt(p.X*p.X + p.Y*p.Y)
	}
	return
}

// RayValues returns the displacement components along ray
func RayValues(ray *Ray) (Ux, Uy []float64) {
	Ux = make([]float64, len(ray.Points))
	Uy = make([]float64, len(ray.Points))
	for i, p := range ray.Points {
		Ux[i], Uy[i] = p.Ux, p.Uy
	}
	return
}

// Draw plots ux and uy along all rays and saves the figure into dirout
// The interface (r = a) is marked with a dashed line
func (o *Results) Draw(dirout, fnkey string) {

	// limits
	umin, umax := 0.0, 0.0
	for _, ray := range o.Rays {
		for _, p := range ray.Points {
			umin = utl.Min(umin, utl.Min(p.Ux, p.Uy))
			umax = utl.Max(umax, utl.Max(p.Ux, p.Uy))
		}
	}

	for k, key := range []string{"u_x", "u_y"} {
		plt.Subplot(2, 1, k+1)
		for i, ray := range o.Rays {
			R := RayDistances(ray)
			Ux, Uy := RayValues(ray)
			U := Ux
			if k == 1 {
				U = Uy
			}
			lbl := io.Sf("$\\theta=%.3f$", ray.Angle)
			plt.Plot(R, U, &plt.A{C: Colors[i%len(Colors)], L: lbl})
		}
		a := o.Params.Radius
		plt.Plot([]float64{a, a}, []float64{umin, umax}, &plt.A{C: "grey", Ls: "--"})
		plt.Gll("$r$", "$"+key+"$", nil)
	}
	plt.Save(dirout, fnkey)
}
