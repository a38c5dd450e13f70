// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"

	"github.com/minhhpham/MToolBox/design"
	"github.com/minhhpham/MToolBox/frame"
)

// ErrNotConverged is returned when IRLS fails to converge within the
// iteration limit.
var ErrNotConverged = errors.New("glm: IRLS did not converge")

const (
	// maxIter and tolerance match R's glm.control defaults.
	maxIter   = 25
	tolerance = 1e-8

	// muEps keeps fitted binomial means away from 0 and 1 so the
	// working weights and deviance stay finite.
	muEps = 1e-10
)

// A Model is a fitted generalized linear model. It retains its
// training frame and design so that diagnostics can be computed after
// the fact.
type Model struct {
	// Family is the response family the model was fit with.
	Family Family

	// Formula is the formula the model was fit to.
	Formula design.Formula

	// Data is the training frame.
	Data *table.Table

	// Design is the design matrix, including the intercept column.
	Design *design.Matrix

	// Coef holds the fitted coefficients, aligned with
	// Design.Names.
	Coef []float64

	// Y is the response: for Binomial a 0/1 encoding, for Gaussian
	// the raw values.
	Y []float64

	// ResponseLevels records, for Binomial fits, the response
	// class encoded as 0 and the class encoded as 1. It is nil for
	// Gaussian fits.
	ResponseLevels []string

	// Deviance is the residual deviance at convergence.
	Deviance float64

	// Iterations is the number of IRLS iterations performed.
	Iterations int

	mu, eta, hat []float64
}

// Fit fits a model of family fam for formula f over table t. The
// response column must be numeric for Gaussian; for Binomial it must
// be either numeric 0/1 or categorical with exactly two levels, in
// which case the second sorted level is encoded as 1.
func Fit(f design.Formula, t *table.Table, fam Family) (*Model, error) {
	dm, err := design.ModelMatrix(f, t, true)
	if err != nil {
		return nil, err
	}
	y, levels, err := response(f, t, fam)
	if err != nil {
		return nil, err
	}

	n, p := dm.X.Dims()
	if n < p {
		return nil, fmt.Errorf("glm: %d observations are too few to fit %d coefficients", n, p)
	}
	beta := mat.NewVecDense(p, nil)
	eta := make([]float64, n)
	mu := make([]float64, n)
	w := make([]float64, n)
	z := make([]float64, n)

	// Scratch for the weighted least-squares step.
	a := mat.NewDense(n, p, nil)
	b := mat.NewDense(n, 1, nil)
	var sol mat.Dense
	var qr mat.QR

	dev := math.Inf(1)
	iter := 0
	converged := false
	for ; iter < maxIter; iter++ {
		var etaVec mat.VecDense
		etaVec.MulVec(dm.X, beta)
		for i := range eta {
			eta[i] = etaVec.AtVec(i)
		}

		// Working response and weights for the canonical link.
		for i := range mu {
			switch fam {
			case Binomial:
				mu[i] = clampMu(1 / (1 + math.Exp(-eta[i])))
				w[i] = mu[i] * (1 - mu[i])
			case Gaussian:
				mu[i] = eta[i]
				w[i] = 1
			}
			z[i] = eta[i] + (y[i]-mu[i])/w[i]
		}

		for i := 0; i < n; i++ {
			sw := math.Sqrt(w[i])
			for j := 0; j < p; j++ {
				a.Set(i, j, sw*dm.X.At(i, j))
			}
			b.Set(i, 0, sw*z[i])
		}
		qr.Factorize(a)
		if err := qr.SolveTo(&sol, false, b); err != nil {
			return nil, fmt.Errorf("glm: singular design matrix: %v", err)
		}
		for j := 0; j < p; j++ {
			beta.SetVec(j, sol.At(j, 0))
		}

		var etaNew mat.VecDense
		etaNew.MulVec(dm.X, beta)
		newDev := deviance(fam, y, &etaNew)
		if math.Abs(newDev-dev)/(math.Abs(newDev)+0.1) < tolerance {
			dev = newDev
			converged = true
			iter++
			break
		}
		dev = newDev
	}
	if !converged {
		return nil, fmt.Errorf("%w in %d iterations", ErrNotConverged, maxIter)
	}

	// Final state at the converged coefficients.
	var etaVec mat.VecDense
	etaVec.MulVec(dm.X, beta)
	for i := range eta {
		eta[i] = etaVec.AtVec(i)
		switch fam {
		case Binomial:
			mu[i] = clampMu(1 / (1 + math.Exp(-eta[i])))
			w[i] = mu[i] * (1 - mu[i])
		case Gaussian:
			mu[i] = eta[i]
			w[i] = 1
		}
	}

	m := &Model{
		Family:         fam,
		Formula:        f,
		Data:           t,
		Design:         dm,
		Coef:           make([]float64, p),
		Y:              y,
		ResponseLevels: levels,
		Deviance:       dev,
		Iterations:     iter,
		mu:             mu,
		eta:            eta,
	}
	for j := 0; j < p; j++ {
		m.Coef[j] = beta.AtVec(j)
	}
	m.hat = hatDiagonal(dm.X, w)
	return m, nil
}

// Fitted returns the fitted means, one per observation: probabilities
// for Binomial, predicted values for Gaussian.
func (m *Model) Fitted() []float64 {
	return m.mu
}

// LinearPredictor returns the linear predictor eta, one per
// observation. For Binomial fits this is the fitted log-odds.
func (m *Model) LinearPredictor() []float64 {
	return m.eta
}

// Leverage returns the hat-matrix diagonal, one value per
// observation.
func (m *Model) Leverage() []float64 {
	return m.hat
}

func clampMu(mu float64) float64 {
	if mu < muEps {
		return muEps
	}
	if mu > 1-muEps {
		return 1 - muEps
	}
	return mu
}

func deviance(fam Family, y []float64, eta *mat.VecDense) float64 {
	dev := 0.0
	for i := range y {
		switch fam {
		case Binomial:
			mu := clampMu(1 / (1 + math.Exp(-eta.AtVec(i))))
			dev += -2 * (y[i]*math.Log(mu) + (1-y[i])*math.Log(1-mu))
		case Gaussian:
			r := y[i] - eta.AtVec(i)
			dev += r * r
		}
	}
	return dev
}

// hatDiagonal computes the leverage values h_i from the weighted
// design: H = W½X (XᵀWX)⁻¹ XᵀW½, so h_i is the squared norm of row i
// of the thin Q factor of W½X.
func hatDiagonal(x *mat.Dense, w []float64) []float64 {
	n, p := x.Dims()
	a := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		sw := math.Sqrt(w[i])
		for j := 0; j < p; j++ {
			a.Set(i, j, sw*x.At(i, j))
		}
	}
	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q)

	h := make([]float64, n)
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < p; j++ {
			s += q.At(i, j) * q.At(i, j)
		}
		h[i] = s
	}
	return h
}

func response(f design.Formula, t *table.Table, fam Family) (ys []float64, levels []string, err error) {
	if xs, ok := frame.Numeric(t, f.Response); ok {
		if fam == Binomial {
			for i, x := range xs {
				if x != 0 && x != 1 {
					return nil, nil, fmt.Errorf("glm: binomial response %q has non-0/1 value %v at row %d", f.Response, x, i+1)
				}
			}
			return xs, []string{"0", "1"}, nil
		}
		return xs, nil, nil
	}
	ss, ok := frame.Strings(t, f.Response)
	if !ok {
		return nil, nil, fmt.Errorf("glm: response %q is not a column", f.Response)
	}
	if fam == Gaussian {
		return nil, nil, fmt.Errorf("glm: gaussian family requires a numeric response; %q is categorical", f.Response)
	}
	levels = frame.Levels(t, f.Response)
	if len(levels) != 2 {
		return nil, nil, fmt.Errorf("glm: binomial response %q must have exactly 2 levels; found %d", f.Response, len(levels))
	}
	ys = make([]float64, len(ss))
	for i, s := range ss {
		if s == levels[1] {
			ys[i] = 1
		}
	}
	return ys, levels, nil
}
