// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// A Merge records one agglomeration step. Left and Right identify the
// merged clusters: ids 0 through n-1 are the original observations
// and id n+i is the cluster formed by step i.
type Merge struct {
	Left, Right int
	Height      float64
}

// A Dendrogram is the result of hierarchical clustering of n
// observations: a sequence of n-1 merges at non-decreasing heights.
type Dendrogram struct {
	merges []Merge
	n      int
}

// Ward clusters the observations behind the Euclidean distance matrix
// d by Ward's minimum-variance criterion. Dissimilarities are squared
// before linking and each merge height is the square root of the
// merge cost, following the "ward.D2" convention.
func Ward(d *mat.SymDense) (*Dendrogram, error) {
	n, _ := d.Dims()
	if n < 1 {
		return nil, fmt.Errorf("cluster: no observations")
	}

	// Squared dissimilarities between the active clusters. A merge
	// collapses into the lower slot and deactivates the higher.
	dd := make([][]float64, n)
	for i := range dd {
		dd[i] = make([]float64, n)
		for j := range dd[i] {
			v := d.At(i, j)
			dd[i][j] = v * v
		}
	}
	size := make([]int, n)
	id := make([]int, n)
	active := make([]bool, n)
	for i := range size {
		size[i] = 1
		id[i] = i
		active[i] = true
	}

	merges := make([]Merge, 0, n-1)
	for step := 0; step < n-1; step++ {
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] && dd[i][j] < best {
					bi, bj, best = i, j, dd[i][j]
				}
			}
		}

		merges = append(merges, Merge{Left: id[bi], Right: id[bj], Height: math.Sqrt(best)})

		// Lance-Williams update with Ward coefficients.
		ni, nj := float64(size[bi]), float64(size[bj])
		for k := 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			nk := float64(size[k])
			v := ((ni+nk)*dd[bi][k] + (nj+nk)*dd[bj][k] - nk*best) / (ni + nj + nk)
			dd[bi][k] = v
			dd[k][bi] = v
		}
		size[bi] += size[bj]
		active[bj] = false
		id[bi] = n + step
	}
	return &Dendrogram{merges: merges, n: n}, nil
}

// Heights returns the merge heights in agglomeration order.
func (dg *Dendrogram) Heights() []float64 {
	hs := make([]float64, len(dg.merges))
	for i, m := range dg.merges {
		hs[i] = m.Height
	}
	return hs
}

// Cut flattens the dendrogram into k clusters and returns one label
// per observation. Labels run from 0 to k-1 in order of first
// appearance, so observation 0 is always in cluster 0.
func (dg *Dendrogram) Cut(k int) ([]int, error) {
	if k < 1 || k > dg.n {
		return nil, fmt.Errorf("cluster: cannot cut %d observations into %d clusters", dg.n, k)
	}

	groups := make(map[int][]int, dg.n)
	for i := 0; i < dg.n; i++ {
		groups[i] = []int{i}
	}
	for s := 0; s < dg.n-k; s++ {
		m := dg.merges[s]
		groups[dg.n+s] = append(groups[m.Left], groups[m.Right]...)
		delete(groups, m.Left)
		delete(groups, m.Right)
	}

	comp := make([]int, dg.n)
	for gid, leaves := range groups {
		for _, l := range leaves {
			comp[l] = gid
		}
	}
	labels := make([]int, dg.n)
	relabel := make(map[int]int, k)
	for i, gid := range comp {
		l, ok := relabel[gid]
		if !ok {
			l = len(relabel)
			relabel[gid] = l
		}
		labels[i] = l
	}
	return labels, nil
}
