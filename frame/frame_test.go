// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func testTable() *table.Table {
	return new(table.Builder).
		Add("x", []float64{1, 2, 3}).
		Add("n", []int{4, 5, 6}).
		Add("class", []string{"b", "a", "b"}).
		Done()
}

func TestNumeric(t *testing.T) {
	tab := testTable()
	if xs, ok := Numeric(tab, "x"); !ok || !reflect.DeepEqual(xs, []float64{1, 2, 3}) {
		t.Errorf("Numeric(x) = %v, %v; want [1 2 3], true", xs, ok)
	}
	if xs, ok := Numeric(tab, "n"); !ok || !reflect.DeepEqual(xs, []float64{4, 5, 6}) {
		t.Errorf("Numeric(n) = %v, %v; want [4 5 6], true", xs, ok)
	}
	if _, ok := Numeric(tab, "class"); ok {
		t.Error("Numeric(class) should not be ok")
	}
	if _, ok := Numeric(tab, "missing"); ok {
		t.Error("Numeric(missing) should not be ok")
	}
}

func TestColumnKinds(t *testing.T) {
	tab := testTable()
	if got, want := NumericColumns(tab), []string{"x", "n"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NumericColumns = %v; want %v", got, want)
	}
	if !IsCategorical(tab, "class") || IsCategorical(tab, "x") {
		t.Error("IsCategorical misclassifies columns")
	}
	if got, want := Levels(tab, "class"), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Levels(class) = %v; want %v", got, want)
	}
	if got := Levels(tab, "x"); got != nil {
		t.Errorf("Levels(x) = %v; want nil", got)
	}
}

func TestMatrix(t *testing.T) {
	tab := new(table.Builder).
		Add("a", []float64{1, 3}).
		Add("b", []float64{2, 4}).
		Done()
	m, err := Matrix(tab)
	if err != nil {
		t.Fatal(err)
	}
	if r, c := m.Dims(); r != 2 || c != 2 {
		t.Fatalf("Dims = %d, %d; want 2, 2", r, c)
	}
	want := []float64{1, 2, 3, 4}
	for i, w := range want {
		if got := m.At(i/2, i%2); got != w {
			t.Errorf("At(%d, %d) = %v; want %v", i/2, i%2, got, w)
		}
	}

	if _, err := Matrix(testTable()); err == nil {
		t.Error("want error for categorical column; got nil")
	}
}
