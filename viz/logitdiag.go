// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/minhhpham/MToolBox/frame"
	"github.com/minhhpham/MToolBox/glm"
)

// Diagnostics bundles the standard checks on a fitted logistic
// model.
type Diagnostics struct {
	// VIF is a table with columns "term" and "VIF" giving the
	// variance inflation factor of each design column.
	VIF *table.Table

	// Linearity facets each numeric column of the training data,
	// except the response, against the fitted log-odds with a
	// smoothed trend, for judging whether the predictors are
	// linear in the logit.
	Linearity Figure

	// Influence charts Cook's distance per observation, with the
	// three most influential observations highlighted and labeled
	// by row number.
	Influence Figure

	// Residuals charts the standardized deviance residuals in
	// observation order, colored by response class.
	Residuals Figure
}

// LogisticDiagnostics derives the diagnostic bundle for a fitted
// logistic model. A model of any other family is rejected
// immediately.
func LogisticDiagnostics(m *glm.Model) (*Diagnostics, error) {
	if m.Family != glm.Binomial {
		return nil, fmt.Errorf("viz: wrong model type %v; diagnostics require a binomial (logistic) fit", m.Family)
	}
	vif, err := m.VIF()
	if err != nil {
		return nil, err
	}
	lin, err := linearityGrid(m)
	if err != nil {
		return nil, err
	}
	infl, err := influencePlot(m)
	if err != nil {
		return nil, err
	}
	res, err := residualPlot(m)
	if err != nil {
		return nil, err
	}
	return &Diagnostics{VIF: vif, Linearity: lin, Influence: infl, Residuals: res}, nil
}

// linearityGrid facets each numeric column of the training frame,
// except the response, against the fitted log-odds. Numeric columns
// outside the model formula are included. Each facet has its own
// value scale; the log-odds scale is shared.
func linearityGrid(m *glm.Model) (Figure, error) {
	var numeric []string
	for _, name := range frame.NumericColumns(m.Data) {
		if name != m.Formula.Response {
			numeric = append(numeric, name)
		}
	}
	if len(numeric) == 0 {
		return nil, fmt.Errorf("viz: no numeric columns to chart against log-odds")
	}

	logit := m.LinearPredictor()
	facets := make([]*plot.Plot, len(numeric))
	for fi, name := range numeric {
		xs, _ := frame.Numeric(m.Data, name)
		p := plot.New()
		p.Title.Text = name
		p.X.Label.Text = "Log-odds"

		xys := make(plotter.XYs, len(xs))
		for i := range xys {
			xys[i] = plotter.XY{X: logit[i], Y: xs[i]}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		p.Add(sc)

		tb := new(table.Builder).Add("logit", logit).Add(name, xs).Done()
		sm := ggstat.LOESS{X: "logit", Y: name}.F(tb)
		st := sm.Table(sm.Tables()[0])
		sx := st.MustColumn("logit").([]float64)
		sy := st.MustColumn(name).([]float64)
		// The smoother can be undefined where the data is
		// sparse.
		curve := make(plotter.XYs, 0, len(sx))
		for i := range sx {
			if math.IsNaN(sy[i]) || math.IsInf(sy[i], 0) {
				continue
			}
			curve = append(curve, plotter.XY{X: sx[i], Y: sy[i]})
		}
		ln, err := plotter.NewLine(curve)
		if err != nil {
			return nil, err
		}
		ln.Color = categoryColor(0)
		ln.Width = vg.Points(1.5)
		p.Add(ln)

		facets[fi] = p
	}
	return facetGrid(facets), nil
}

// facetGrid arranges facets into a roughly square row-major grid.
func facetGrid(facets []*plot.Plot) *Grid {
	cols := int(math.Ceil(math.Sqrt(float64(len(facets)))))
	rows := (len(facets) + cols - 1) / cols
	g := &Grid{Plots: make([][]*plot.Plot, rows)}
	for i := range g.Plots {
		g.Plots[i] = make([]*plot.Plot, cols)
	}
	for i, p := range facets {
		g.Plots[i/cols][i%cols] = p
	}
	return g
}

// influencePlot charts Cook's distance per observation and singles
// out the three most influential.
func influencePlot(m *glm.Model) (Figure, error) {
	ds := m.CooksDistances()
	p := plot.New()
	p.X.Label.Text = "Observation"
	p.Y.Label.Text = "Cook's distance"

	xys := make(plotter.XYs, len(ds))
	for i, d := range ds {
		xys[i] = plotter.XY{X: float64(i + 1), Y: d}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	base := sc.GlyphStyle
	top := topIndices(ds, 3)
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		st := base
		if top[i] {
			st.Color = categoryColor(2)
		}
		return st
	}
	p.Add(sc)

	var labeled plotter.XYLabels
	for i := range ds {
		if top[i] {
			labeled.XYs = append(labeled.XYs, plotter.XY{X: float64(i + 1), Y: ds[i]})
			labeled.Labels = append(labeled.Labels, strconv.Itoa(i+1))
		}
	}
	labels, err := plotter.NewLabels(labeled)
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return p, nil
}

// topIndices returns the set of indices of the k largest values.
func topIndices(xs []float64, k int) map[int]bool {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] > xs[idx[b]] })
	if k > len(idx) {
		k = len(idx)
	}
	top := make(map[int]bool, k)
	for _, i := range idx[:k] {
		top[i] = true
	}
	return top
}

// residualSeries splits the standardized residuals into one point
// series per response class. Every observation lands in exactly one
// series, with x its 1-based row number.
func residualSeries(m *glm.Model) []plotter.XYs {
	rs := m.StandardizedResiduals()
	series := make([]plotter.XYs, len(m.ResponseLevels))
	for i, r := range rs {
		class := int(m.Y[i])
		series[class] = append(series[class], plotter.XY{X: float64(i + 1), Y: r})
	}
	return series
}

// residualPlot charts standardized deviance residuals in observation
// order, one colored series per response class.
func residualPlot(m *glm.Model) (Figure, error) {
	p := plot.New()
	p.X.Label.Text = "Observation"
	p.Y.Label.Text = "Standardized residuals"
	for class, xys := range residualSeries(m) {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = categoryColor(class)
		p.Add(sc)
		p.Legend.Add(m.ResponseLevels[class], sc)
	}
	return p, nil
}
