// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/minhhpham/MToolBox/cluster"
	"github.com/minhhpham/MToolBox/frame"
)

// DefaultMaxClusters is the default kmax for Elbow.
const DefaultMaxClusters = 8

// Elbow clusters the rows of t hierarchically by Ward's method and
// charts the within-cluster sum of squares of every cut from 1
// through kmax clusters. A bend in the curve suggests a natural
// cluster count. All columns of t must be numeric, and kmax must not
// exceed the number of rows. If kmax is 0 it defaults to
// DefaultMaxClusters.
func Elbow(t *table.Table, kmax int) (Figure, error) {
	if kmax == 0 {
		kmax = DefaultMaxClusters
	}
	if kmax < 1 {
		return nil, fmt.Errorf("viz: kmax must be at least 1; got %d", kmax)
	}
	x, err := frame.Matrix(t)
	if err != nil {
		return nil, err
	}
	dg, err := cluster.Ward(cluster.Distances(x))
	if err != nil {
		return nil, err
	}

	xys := make(plotter.XYs, kmax)
	for k := 1; k <= kmax; k++ {
		labels, err := dg.Cut(k)
		if err != nil {
			return nil, err
		}
		xys[k-1] = plotter.XY{X: float64(k), Y: cluster.WithinSS(x, labels)}
	}

	p := plot.New()
	p.X.Label.Text = "Number of clusters"
	p.Y.Label.Text = "Within groups sum of squares"
	p.X.Tick.Marker = integerTicks{}
	ln, sc, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	p.Add(ln, sc)
	return p, nil
}

// integerTicks places a tick at every integer in the axis range.
type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	var ts []plot.Tick
	for v := math.Ceil(min); v <= max; v++ {
		ts = append(ts, plot.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ts
}
