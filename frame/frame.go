// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides helpers for loading and accessing tabular
// data stored in go-gg tables.
//
// A data frame is a *table.Table whose columns are either numeric
// ([]float64 or []int) or categorical ([]string). Rows are
// observations. Package frame adds CSV loading and typed column
// access on top of the table package; statistical packages in this
// module consume frames through these helpers.
package frame

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"
)

// Numeric returns column col of t as a float64 slice. []float64
// columns are returned directly and must not be modified; []int
// columns are converted to a fresh slice. The second result is false
// if the column does not exist or is not numeric.
func Numeric(t *table.Table, col string) ([]float64, bool) {
	switch c := t.Column(col).(type) {
	case []float64:
		return c, true
	case []int:
		var xs []float64
		slice.Convert(&xs, c)
		return xs, true
	}
	return nil, false
}

// Strings returns categorical column col of t. The second result is
// false if the column does not exist or is not categorical.
func Strings(t *table.Table, col string) ([]string, bool) {
	c, ok := t.Column(col).([]string)
	return c, ok
}

// IsNumeric reports whether column col of t holds numeric data.
func IsNumeric(t *table.Table, col string) bool {
	_, ok := Numeric(t, col)
	return ok
}

// IsCategorical reports whether column col of t holds categorical
// data.
func IsCategorical(t *table.Table, col string) bool {
	_, ok := Strings(t, col)
	return ok
}

// NumericColumns returns the names of the numeric columns of t in
// table order.
func NumericColumns(t *table.Table) []string {
	var cols []string
	for _, col := range t.Columns() {
		if IsNumeric(t, col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Levels returns the distinct values of categorical column col in
// sorted order. It returns nil if col is missing or not categorical.
func Levels(t *table.Table, col string) []string {
	vals, ok := Strings(t, col)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var levels []string
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			levels = append(levels, v)
		}
	}
	sort.Strings(levels)
	return levels
}

// Matrix converts t to a dense row-observation matrix using every
// column of t in table order. It fails if t has no columns or if any
// column is not numeric.
func Matrix(t *table.Table) (*mat.Dense, error) {
	cols := t.Columns()
	if len(cols) == 0 {
		return nil, fmt.Errorf("frame: table has no columns")
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("frame: table has no rows")
	}
	m := mat.NewDense(t.Len(), len(cols), nil)
	for j, col := range cols {
		xs, ok := Numeric(t, col)
		if !ok {
			return nil, fmt.Errorf("frame: column %q is not numeric", col)
		}
		for i, x := range xs {
			m.Set(i, j, x)
		}
	}
	return m, nil
}
