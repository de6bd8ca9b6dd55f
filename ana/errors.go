// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/io"

// SingularSystemError is returned when the linear system for the integration
// constants is singular or too ill-conditioned to be solved
type SingularSystemError struct {
	Cond float64 // estimated condition number (1-norm)
	Det  float64 // determinant
	Err  error   // error from the linear solver, if any
}

func (e *SingularSystemError) Error() string {
	if e.Err != nil {
		return io.Sf("linear system for integration constants is singular (cond = %g, det = %g): %v", e.Cond, e.Det, e.Err)
	}
	return io.Sf("linear system for integration constants is singular (cond = %g, det = %g)", e.Cond, e.Det)
}

func (e *SingularSystemError) Unwrap() error { return e.Err }

// InvalidParameterError is returned when a parameter violates a precondition
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return io.Sf("invalid parameter %q = %g: %s", e.Name, e.Value, e.Reason)
}
