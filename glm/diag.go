// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/minhhpham/MToolBox/design"
)

// PearsonResiduals returns the Pearson residuals, one per
// observation: the raw residual scaled by the square root of the
// variance function at the fitted mean.
func (m *Model) PearsonResiduals() []float64 {
	rs := make([]float64, len(m.Y))
	for i := range rs {
		switch m.Family {
		case Binomial:
			rs[i] = (m.Y[i] - m.mu[i]) / math.Sqrt(m.mu[i]*(1-m.mu[i]))
		case Gaussian:
			rs[i] = m.Y[i] - m.mu[i]
		}
	}
	return rs
}

// DevianceResiduals returns the deviance residuals, one per
// observation. Their squares sum to the residual deviance.
func (m *Model) DevianceResiduals() []float64 {
	rs := make([]float64, len(m.Y))
	for i := range rs {
		switch m.Family {
		case Binomial:
			d := -2 * (m.Y[i]*math.Log(m.mu[i]) + (1-m.Y[i])*math.Log(1-m.mu[i]))
			rs[i] = math.Copysign(math.Sqrt(d), m.Y[i]-m.mu[i])
		case Gaussian:
			rs[i] = m.Y[i] - m.mu[i]
		}
	}
	return rs
}

// StandardizedResiduals returns the deviance residuals scaled by the
// dispersion and leverage, so that each has approximately unit
// variance.
func (m *Model) StandardizedResiduals() []float64 {
	rs := m.DevianceResiduals()
	disp := m.dispersion()
	for i := range rs {
		rs[i] /= math.Sqrt(disp * (1 - m.hat[i]))
	}
	return rs
}

// CooksDistances returns Cook's distance for each observation, a
// combined measure of residual size and leverage. Observations with
// large values have outsized influence on the fitted coefficients.
func (m *Model) CooksDistances() []float64 {
	rp := m.PearsonResiduals()
	p := float64(len(m.Coef))
	disp := m.dispersion()
	ds := make([]float64, len(rp))
	for i, r := range rp {
		h := m.hat[i]
		ds[i] = r * r * h / (p * disp * (1 - h) * (1 - h))
	}
	return ds
}

// dispersion estimates the dispersion parameter: fixed at 1 for
// Binomial, the residual mean square for Gaussian.
func (m *Model) dispersion() float64 {
	if m.Family == Binomial {
		return 1
	}
	n, p := m.Design.X.Dims()
	return m.Deviance / float64(n-p)
}

// VIF returns the variance inflation factor of each non-intercept
// design column as a table with columns "term" and "VIF". The factors
// are the diagonal of the inverse of the predictor correlation
// matrix; a value near 1 means a predictor is uncorrelated with the
// rest, while large values flag collinearity.
func (m *Model) VIF() (*table.Table, error) {
	n, p := m.Design.X.Dims()
	terms := m.Design.Names
	lo := 0
	if len(terms) > 0 && terms[0] == design.InterceptName {
		lo = 1
	}
	terms = terms[lo:]
	if len(terms) < 2 {
		return nil, fmt.Errorf("glm: VIF requires at least 2 predictor columns; have %d", len(terms))
	}

	col := make([]float64, n)
	for j, name := range terms {
		mat.Col(col, lo+j, m.Design.X)
		if stat.Variance(col, nil) == 0 {
			return nil, fmt.Errorf("glm: predictor %q is constant", name)
		}
	}

	sub := m.Design.X.Slice(0, n, lo, p)
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, sub, nil)
	var inv mat.Dense
	if err := inv.Inverse(&corr); err != nil {
		// A Condition error means the inverse was still
		// computed, just with reduced accuracy.
		if _, ok := err.(mat.Condition); !ok {
			return nil, fmt.Errorf("glm: predictors are collinear: %v", err)
		}
	}
	vifs := make([]float64, len(terms))
	for j := range vifs {
		vifs[j] = inv.At(j, j)
	}
	return new(table.Builder).Add("term", terms).Add("VIF", vifs).Done(), nil
}
