// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster implements agglomerative hierarchical clustering of
// numeric observations using Ward's minimum-variance method.
//
// The entry points mirror the usual pipeline: Distances builds a
// Euclidean distance matrix, Ward links it into a Dendrogram, and
// Dendrogram.Cut flattens the tree into k cluster labels. WithinSS
// scores a labeling by its within-cluster sum of squares, which is
// what elbow plots chart against k.
package cluster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Distances returns the matrix of pairwise Euclidean distances
// between the rows of x.
func Distances(x mat.Matrix) *mat.SymDense {
	n, c := x.Dims()
	d := mat.NewSymDense(n, nil)
	ri := make([]float64, c)
	rj := make([]float64, c)
	for i := 0; i < n; i++ {
		mat.Row(ri, i, x)
		for j := i + 1; j < n; j++ {
			mat.Row(rj, j, x)
			d.SetSym(i, j, floats.Distance(ri, rj, 2))
		}
	}
	return d
}

// WithinSS returns the within-cluster sum of squares of the rows of x
// under the given labeling: the total squared Euclidean distance from
// each row to its cluster centroid. Labels must be non-negative and
// have one entry per row.
func WithinSS(x mat.Matrix, labels []int) float64 {
	r, c := x.Dims()
	if len(labels) != r {
		panic("cluster: label count does not match row count")
	}
	k := 0
	for _, l := range labels {
		if l < 0 {
			panic("cluster: negative cluster label")
		}
		if l+1 > k {
			k = l + 1
		}
	}

	cent := make([][]float64, k)
	for i := range cent {
		cent[i] = make([]float64, c)
	}
	counts := make([]int, k)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, x)
		floats.Add(cent[labels[i]], row)
		counts[labels[i]]++
	}
	for l := range cent {
		if counts[l] > 0 {
			floats.Scale(1/float64(counts[l]), cent[l])
		}
	}

	wss := 0.0
	for i := 0; i < r; i++ {
		mat.Row(row, i, x)
		d := floats.Distance(row, cent[labels[i]], 2)
		wss += d * d
	}
	return wss
}
