// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/minhhpham/MToolBox/design"
	"github.com/minhhpham/MToolBox/frame"
)

// A ProjectionPlot is the result of Projection: a figure plus the
// share of variance captured by each plotted component.
type ProjectionPlot struct {
	// Scene is the interactive figure. It is set when the
	// projection is three dimensional.
	Scene *Scene3D

	// Figure is the static figure. It is set when the projection
	// is two dimensional.
	Figure Figure

	// VarFrac is the fraction of the total predictor variance
	// captured by each plotted principal component.
	VarFrac []float64

	// VarTotal is the sum of VarFrac.
	VarTotal float64
}

// Projection projects the predictors of formula f onto their leading
// principal components and plots the projection against the response.
//
// Categorical predictors enter the projection as indicator columns.
// The response never enters the projection. A categorical response
// yields one colored point series per class. A numeric response takes
// over the last axis, so the plot shows the response over the leading
// components and only dim-1 components are projected.
//
// dim selects the number of axes: 3 renders an interactive Scene3D,
// 2 a static Figure. If dim is 0 it defaults to 3, or to the design
// width if that is smaller. Any other value is an error.
func Projection(f design.Formula, t *table.Table, dim int) (*ProjectionPlot, error) {
	dm, err := design.ModelMatrix(f, t, false)
	if err != nil {
		return nil, err
	}
	_, cols := dm.X.Dims()
	if dim == 0 {
		dim = 3
		if cols < 3 {
			dim = cols
		}
	}
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("viz: cannot plot a %d dimensional projection; dim must be 2 or 3", dim)
	}

	classify := frame.IsCategorical(t, f.Response)
	ncomp := dim
	if !classify {
		ncomp = dim - 1
	}
	scores, fracs, err := principalScores(dm.X, ncomp)
	if err != nil {
		return nil, err
	}

	pp := &ProjectionPlot{VarFrac: fracs, VarTotal: floats.Sum(fracs)}
	if classify {
		classes, _ := frame.Strings(t, f.Response)
		levels := frame.Levels(t, f.Response)
		if dim == 3 {
			pp.Scene = classScene(scores, classes, levels)
			return pp, nil
		}
		fig, err := classFigure(scores, classes, levels, f.Response)
		if err != nil {
			return nil, err
		}
		pp.Figure = fig
		return pp, nil
	}

	ys, ok := frame.Numeric(t, f.Response)
	if !ok {
		return nil, fmt.Errorf("viz: response %q is neither numeric nor categorical", f.Response)
	}
	if dim == 3 {
		pp.Scene = responseScene(scores, ys, f.Response)
		return pp, nil
	}
	fig, err := responseFigure(scores, ys, f.Response)
	if err != nil {
		return nil, err
	}
	pp.Figure = fig
	return pp, nil
}

// principalScores projects the rows of x onto its first k principal
// components and returns the scores with each component's fraction of
// the total variance.
func principalScores(x *mat.Dense, k int) (*mat.Dense, []float64, error) {
	n, d := x.Dims()
	if n < 2 {
		return nil, nil, fmt.Errorf("viz: need at least 2 observations to project; have %d", n)
	}
	var pc stat.PC
	if !pc.PrincipalComponents(x, nil) {
		return nil, nil, fmt.Errorf("viz: principal component decomposition failed")
	}
	vars := pc.VarsTo(nil)
	if k > len(vars) {
		return nil, nil, fmt.Errorf("viz: %d components requested; only %d available", k, len(vars))
	}
	total := floats.Sum(vars)
	if total == 0 {
		return nil, nil, fmt.Errorf("viz: predictors have no variance")
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	centered := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		m := stat.Mean(col, nil)
		for i, v := range col {
			centered.Set(i, j, v-m)
		}
	}
	var scores mat.Dense
	scores.Mul(centered, vecs.Slice(0, d, 0, k))

	fracs := make([]float64, k)
	for i := range fracs {
		fracs[i] = vars[i] / total
	}
	return &scores, fracs, nil
}

func classScene(scores *mat.Dense, classes, levels []string) *Scene3D {
	ch := charts.NewScatter3D()
	ch.SetGlobalOptions(
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "PC1"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "PC2"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "PC3"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	for li, level := range levels {
		var data []opts.Chart3DData
		for i, c := range classes {
			if c != level {
				continue
			}
			data = append(data, opts.Chart3DData{Value: []interface{}{
				scores.At(i, 0), scores.At(i, 1), scores.At(i, 2),
			}})
		}
		ch.AddSeries(level, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(categoryColor(li))}))
	}
	return &Scene3D{chart: ch}
}

func responseScene(scores *mat.Dense, ys []float64, response string) *Scene3D {
	lo, hi := stats.Bounds(ys)
	ch := charts.NewScatter3D()
	ch.SetGlobalOptions(
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "PC1"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "PC2"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: response}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        float32(lo),
			Max:        float32(hi),
			Calculable: true,
			InRange:    &opts.VisualMapInRange{Color: continuousStops(7)},
		}),
	)
	data := make([]opts.Chart3DData, len(ys))
	for i, y := range ys {
		data[i] = opts.Chart3DData{Value: []interface{}{scores.At(i, 0), scores.At(i, 1), y}}
	}
	ch.AddSeries(response, data)
	return &Scene3D{chart: ch}
}

func classFigure(scores *mat.Dense, classes, levels []string, response string) (Figure, error) {
	tb := new(table.Builder).
		Add("PC1", mat.Col(nil, 0, scores)).
		Add("PC2", mat.Col(nil, 1, scores)).
		Add(response, classes).
		Done()

	p := plot.New()
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"
	for li, level := range levels {
		g := table.FilterEq(tb, response, level)
		sub := g.Table(g.Tables()[0])
		xs := sub.MustColumn("PC1").([]float64)
		ys := sub.MustColumn("PC2").([]float64)
		xys := make(plotter.XYs, len(xs))
		for i := range xys {
			xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = categoryColor(li)
		p.Add(sc)
		p.Legend.Add(level, sc)
	}
	return p, nil
}

func responseFigure(scores *mat.Dense, ys []float64, response string) (Figure, error) {
	p := plot.New()
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = response
	xys := make(plotter.XYs, len(ys))
	for i := range xys {
		xys[i] = plotter.XY{X: scores.At(i, 0), Y: ys[i]}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = categoryColor(0)
	p.Add(sc)
	return p, nil
}
