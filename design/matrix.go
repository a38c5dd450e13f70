// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package design

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"

	"github.com/minhhpham/MToolBox/frame"
)

// InterceptName is the design-matrix column name of the intercept.
const InterceptName = "(Intercept)"

// A Matrix is a numeric design matrix with named columns. Rows are
// observations in the order of the source table.
type Matrix struct {
	// X holds the design values, one column per entry of Names.
	X *mat.Dense

	// Names are the design column names: predictor names for
	// numeric predictors, name+level for indicator columns, and
	// InterceptName for the intercept column if present.
	Names []string
}

// Predictors resolves f's predictor terms against t: Dot expands to
// every column except the response, in table order. It fails if the
// response or any term is not a column of t.
func (f Formula) Predictors(t *table.Table) ([]string, error) {
	if t.Column(f.Response) == nil {
		return nil, fmt.Errorf("design: response %q is not a column", f.Response)
	}
	if f.Dot {
		var preds []string
		for _, col := range t.Columns() {
			if col != f.Response {
				preds = append(preds, col)
			}
		}
		if len(preds) == 0 {
			return nil, fmt.Errorf("design: no predictor columns besides %q", f.Response)
		}
		return preds, nil
	}
	for _, term := range f.Terms {
		if t.Column(term) == nil {
			return nil, fmt.Errorf("design: term %q is not a column", term)
		}
	}
	return f.Terms, nil
}

// ModelMatrix builds the design matrix for formula f over table t.
// Numeric predictors contribute one column each. A categorical
// predictor with k levels contributes k-1 treatment-coded indicator
// columns, one per non-reference level in sorted order; the first
// level is the reference. If intercept is set, a leading all-ones
// column named InterceptName is included. The response column never
// enters the matrix.
func ModelMatrix(f Formula, t *table.Table, intercept bool) (*Matrix, error) {
	preds, err := f.Predictors(t)
	if err != nil {
		return nil, err
	}
	n := t.Len()
	if n == 0 {
		return nil, fmt.Errorf("design: table has no rows")
	}

	var names []string
	var cols [][]float64
	if intercept {
		ones := make([]float64, n)
		for i := range ones {
			ones[i] = 1
		}
		names = append(names, InterceptName)
		cols = append(cols, ones)
	}
	for _, p := range preds {
		if xs, ok := frame.Numeric(t, p); ok {
			names = append(names, p)
			cols = append(cols, xs)
			continue
		}
		ss, ok := frame.Strings(t, p)
		if !ok {
			return nil, fmt.Errorf("design: column %q is neither numeric nor categorical", p)
		}
		levels := frame.Levels(t, p)
		if len(levels) < 2 {
			return nil, fmt.Errorf("design: categorical %q has fewer than 2 levels", p)
		}
		for _, level := range levels[1:] {
			ind := make([]float64, n)
			for i, s := range ss {
				if s == level {
					ind[i] = 1
				}
			}
			names = append(names, p+level)
			cols = append(cols, ind)
		}
	}

	x := mat.NewDense(n, len(names), nil)
	for j, col := range cols {
		for i, v := range col {
			x.Set(i, j, v)
		}
	}
	return &Matrix{X: x, Names: names}, nil
}
