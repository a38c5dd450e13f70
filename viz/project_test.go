// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/minhhpham/MToolBox/design"
)

func classTable() *table.Table {
	return new(table.Builder).
		Add("a", []float64{5.1, 4.9, 4.7, 4.6, 7.0, 6.4, 6.9, 5.5, 6.3, 5.8, 7.1, 6.3}).
		Add("b", []float64{3.5, 3.0, 3.2, 3.1, 3.2, 3.2, 3.1, 2.3, 3.3, 2.7, 3.0, 2.9}).
		Add("c", []float64{1.4, 1.4, 1.3, 1.5, 4.7, 4.5, 4.9, 4.0, 6.0, 5.1, 5.9, 5.6}).
		Add("species", []string{"s", "s", "s", "s", "v", "v", "v", "v", "g", "g", "g", "g"}).
		Done()
}

func regressTable() *table.Table {
	return new(table.Builder).
		Add("a", []float64{1, 2, 3, 4, 5, 6, 7, 8}).
		Add("b", []float64{2, 1, 4, 3, 6, 5, 8, 7}).
		Add("c", []float64{1, 4, 2, 3, 8, 6, 5, 7}).
		Add("y", []float64{3, 4, 8, 9, 15, 16, 21, 22}).
		Done()
}

func pf(t *testing.T, s string) design.Formula {
	t.Helper()
	f, err := design.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func checkFracs(t *testing.T, fracs []float64, n int) {
	t.Helper()
	if len(fracs) != n {
		t.Fatalf("VarFrac length: want %d; got %d", n, len(fracs))
	}
	sum := 0.0
	for i, fr := range fracs {
		if fr < 0 || fr > 1+1e-9 {
			t.Errorf("VarFrac[%d] = %v out of [0, 1]", i, fr)
		}
		if i > 0 && fr > fracs[i-1]+1e-9 {
			t.Errorf("VarFrac not descending: %v", fracs)
		}
		sum += fr
	}
	if sum > 1+1e-9 {
		t.Errorf("VarFrac sums to %v > 1", sum)
	}
}

func TestProjectionClass3D(t *testing.T) {
	pp, err := Projection(pf(t, "species ~ ."), classTable(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Scene == nil || pp.Figure != nil {
		t.Fatalf("want an interactive scene for dim 3; got Scene=%v Figure=%v", pp.Scene, pp.Figure)
	}
	checkFracs(t, pp.VarFrac, 3)
	// All three components are plotted, so they capture
	// everything.
	if math.Abs(pp.VarTotal-1) > 1e-9 {
		t.Errorf("VarTotal: want 1; got %v", pp.VarTotal)
	}
}

func TestProjectionClass2D(t *testing.T) {
	pp, err := Projection(pf(t, "species ~ ."), classTable(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Figure == nil || pp.Scene != nil {
		t.Fatalf("want a static figure for dim 2; got Scene=%v Figure=%v", pp.Scene, pp.Figure)
	}
	checkFracs(t, pp.VarFrac, 2)
}

func TestProjectionRegression(t *testing.T) {
	pp, err := Projection(pf(t, "y ~ a + b + c"), regressTable(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Scene == nil {
		t.Fatal("want an interactive scene for dim 3")
	}
	// The response takes the last axis, so only two components
	// are projected.
	checkFracs(t, pp.VarFrac, 2)

	pp, err = Projection(pf(t, "y ~ a + b + c"), regressTable(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Figure == nil {
		t.Fatal("want a static figure for dim 2")
	}
	checkFracs(t, pp.VarFrac, 1)
}

func TestProjectionDefaultDim(t *testing.T) {
	// Two design columns: the default dimension drops to 2.
	pp, err := Projection(pf(t, "y ~ a + b"), regressTable(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Figure == nil || pp.Scene != nil {
		t.Fatal("want a static figure when the design has 2 columns")
	}
	checkFracs(t, pp.VarFrac, 1)
}

func TestProjectionDimError(t *testing.T) {
	for _, dim := range []int{1, 4, -2} {
		if _, err := Projection(pf(t, "species ~ ."), classTable(), dim); err == nil {
			t.Errorf("dim %d: want error; got nil", dim)
		}
	}
	// A single design column defaults to dim 1, which cannot be
	// plotted.
	if _, err := Projection(pf(t, "y ~ a"), regressTable(), 0); err == nil {
		t.Error("single predictor: want error; got nil")
	}
}

func TestProjectionBinaryWide(t *testing.T) {
	n := 100
	p1 := make([]float64, n)
	p2 := make([]float64, n)
	p3 := make([]float64, n)
	p4 := make([]float64, n)
	class := make([]string, n)
	for i := 0; i < n; i++ {
		p1[i] = float64(i)
		p2[i] = float64((i * 3) % 7)
		p3[i] = float64((i * i) % 11)
		p4[i] = float64(i%4) - 1.5
		if i%2 == 0 {
			class[i] = "a"
		} else {
			class[i] = "b"
		}
	}
	tb := new(table.Builder).
		Add("p1", p1).
		Add("p2", p2).
		Add("p3", p3).
		Add("p4", p4).
		Add("class", class).
		Done()
	pp, err := Projection(pf(t, "class ~ ."), tb, 2)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Figure == nil || pp.Scene != nil {
		t.Fatalf("want a static figure; got Scene=%v Figure=%v", pp.Scene, pp.Figure)
	}
	checkFracs(t, pp.VarFrac, 2)
}

func TestProjectionCollinear(t *testing.T) {
	tb := new(table.Builder).
		Add("a", []float64{1, 2, 3, 4, 5, 6}).
		Add("b", []float64{2, 4, 6, 8, 10, 12}).
		Add("c", []float64{3, 6, 9, 12, 15, 18}).
		Add("class", []string{"x", "y", "x", "y", "x", "y"}).
		Done()
	pp, err := Projection(pf(t, "class ~ ."), tb, 3)
	if err != nil {
		t.Fatal(err)
	}
	// All variance lies along a single direction.
	if math.Abs(pp.VarFrac[0]-1) > 1e-8 {
		t.Errorf("VarFrac[0]: want 1; got %v", pp.VarFrac[0])
	}
	for _, fr := range pp.VarFrac[1:] {
		if math.Abs(fr) > 1e-8 {
			t.Errorf("trailing VarFrac: want 0; got %v", fr)
		}
	}
}

func TestSceneWriteHTML(t *testing.T) {
	pp, err := Projection(pf(t, "species ~ ."), classTable(), 3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := pp.Scene.WriteHTML(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "echarts") {
		t.Error("rendered page does not reference echarts")
	}
}

func TestProjectionCategoricalPredictor(t *testing.T) {
	tb := new(table.Builder).
		Add("a", []float64{1, 2, 3, 4, 5, 6, 7, 8}).
		Add("grp", []string{"u", "v", "u", "v", "u", "v", "u", "v"}).
		Add("y", []float64{2, 5, 4, 9, 6, 13, 8, 17}).
		Done()
	// grp expands to one indicator column, so the design is 2
	// wide and the default dimension is 2.
	pp, err := Projection(pf(t, "y ~ a + grp"), tb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pp.Figure == nil {
		t.Fatal("want a static figure")
	}
	checkFracs(t, pp.VarFrac, 1)
}
