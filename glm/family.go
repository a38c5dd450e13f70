// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glm fits generalized linear models to data frames and
// exposes the fit quantities that regression diagnostics consume.
//
// Two families are supported: Binomial with the logit link (logistic
// regression) and Gaussian with the identity link (ordinary least
// squares). Fitting is iteratively reweighted least squares with the
// same iteration limit and convergence tolerance R's glm uses, so
// coefficients agree with R to reporting precision on well-behaved
// data.
package glm

// Family identifies the response distribution and link function of a
// model.
type Family int

const (
	// Binomial is a 0/1 response with the logit link.
	Binomial Family = iota

	// Gaussian is a numeric response with the identity link.
	Gaussian
)

func (f Family) String() string {
	switch f {
	case Binomial:
		return "binomial"
	case Gaussian:
		return "gaussian"
	}
	return "unknown"
}
