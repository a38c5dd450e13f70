// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package design binds model formulas to data frames and builds
// numeric design matrices from them.
//
// A formula names a response variable and a set of predictor terms in
// the conventional "response ~ term + term" notation, with "." as the
// set of all non-response columns. Categorical predictors expand to
// treatment-coded indicator columns, so a design matrix is always a
// dense numeric matrix ready for linear algebra.
package design

import (
	"fmt"
	"strings"
)

// A Formula declares a response variable and predictor terms. The
// zero Formula is not valid; use Parse.
type Formula struct {
	// Response is the name of the response column.
	Response string

	// Terms are the predictor column names, in formula order. It
	// is nil when Dot is set.
	Terms []string

	// Dot indicates that the predictors are all columns of the
	// bound table other than Response.
	Dot bool
}

// Parse parses a formula in "response ~ term + term" notation. The
// right-hand side may be "." to mean every column except the
// response.
func Parse(s string) (Formula, error) {
	parts := strings.Split(s, "~")
	if len(parts) != 2 {
		return Formula{}, fmt.Errorf("design: formula %q must have exactly one ~", s)
	}
	resp := strings.TrimSpace(parts[0])
	if resp == "" {
		return Formula{}, fmt.Errorf("design: formula %q has no response", s)
	}

	rhs := strings.TrimSpace(parts[1])
	if rhs == "." {
		return Formula{Response: resp, Dot: true}, nil
	}

	var terms []string
	seen := make(map[string]bool)
	for _, term := range strings.Split(rhs, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			return Formula{}, fmt.Errorf("design: formula %q has an empty term", s)
		}
		if term == "." {
			return Formula{}, fmt.Errorf("design: formula %q mixes . with named terms", s)
		}
		if term == resp {
			return Formula{}, fmt.Errorf("design: response %q cannot be a predictor", resp)
		}
		if seen[term] {
			return Formula{}, fmt.Errorf("design: duplicate term %q", term)
		}
		seen[term] = true
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return Formula{}, fmt.Errorf("design: formula %q has no terms", s)
	}
	return Formula{Response: resp, Terms: terms}, nil
}

// String returns the formula in "response ~ term + term" notation.
func (f Formula) String() string {
	if f.Dot {
		return f.Response + " ~ ."
	}
	return f.Response + " ~ " + strings.Join(f.Terms, " + ")
}
