// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// blobs is two tight groups of three points each, far apart.
func blobs() *mat.Dense {
	return mat.NewDense(6, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		10, 10,
		10, 11,
		11, 10,
	})
}

func TestDistances(t *testing.T) {
	d := Distances(blobs())
	if n, _ := d.Dims(); n != 6 {
		t.Fatalf("Dims: want 6; got %d", n)
	}
	if got := d.At(0, 1); got != 1 {
		t.Errorf("d(0,1): want 1; got %v", got)
	}
	if got, want := d.At(1, 2), math.Sqrt2; math.Abs(got-want) > 1e-12 {
		t.Errorf("d(1,2): want %v; got %v", want, got)
	}
	if got := d.At(3, 3); got != 0 {
		t.Errorf("d(3,3): want 0; got %v", got)
	}
}

func TestWard(t *testing.T) {
	dg, err := Ward(Distances(blobs()))
	if err != nil {
		t.Fatal(err)
	}
	heights := dg.Heights()
	if len(heights) != 5 {
		t.Fatalf("merge count: want 5; got %d", len(heights))
	}
	if got := heights[0]; math.Abs(got-1) > 1e-12 {
		t.Errorf("first merge height: want 1; got %v", got)
	}
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[i-1] {
			t.Errorf("heights not monotone: h[%d]=%v < h[%d]=%v", i, heights[i], i-1, heights[i-1])
		}
	}

	labels, err := dg.Cut(2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 0, 0, 1, 1, 1}; !reflect.DeepEqual(labels, want) {
		t.Errorf("Cut(2): want %v; got %v", want, labels)
	}
}

func TestCutLabels(t *testing.T) {
	dg, err := Ward(Distances(blobs()))
	if err != nil {
		t.Fatal(err)
	}
	for k := 1; k <= 6; k++ {
		labels, err := dg.Cut(k)
		if err != nil {
			t.Fatalf("Cut(%d): %v", k, err)
		}
		if labels[0] != 0 {
			t.Errorf("Cut(%d): first label is %d, want 0", k, labels[0])
		}
		seen := make(map[int]bool)
		for _, l := range labels {
			if l < 0 || l >= k {
				t.Errorf("Cut(%d): label %d out of range", k, l)
			}
			seen[l] = true
		}
		if len(seen) != k {
			t.Errorf("Cut(%d): %d distinct labels", k, len(seen))
		}
	}
	for _, k := range []int{0, 7, -1} {
		if _, err := dg.Cut(k); err == nil {
			t.Errorf("Cut(%d): want error; got nil", k)
		}
	}
}

func TestWithinSS(t *testing.T) {
	x := blobs()
	dg, err := Ward(Distances(x))
	if err != nil {
		t.Fatal(err)
	}

	one, err := dg.Cut(1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := WithinSS(x, one), 908.0/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("WithinSS(k=1): want %v; got %v", want, got)
	}

	two, err := dg.Cut(2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := WithinSS(x, two), 8.0/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("WithinSS(k=2): want %v; got %v", want, got)
	}

	prev := math.Inf(1)
	for k := 1; k <= 6; k++ {
		labels, err := dg.Cut(k)
		if err != nil {
			t.Fatal(err)
		}
		wss := WithinSS(x, labels)
		if wss > prev+1e-9 {
			t.Errorf("WithinSS increased from %v to %v at k=%d", prev, wss, k)
		}
		prev = wss
	}
	if prev != 0 {
		t.Errorf("WithinSS(k=n): want 0; got %v", prev)
	}
}

func TestWardErrors(t *testing.T) {
	if _, err := Ward(mat.NewSymDense(1, nil)); err != nil {
		t.Errorf("Ward on single observation: %v", err)
	}
	dg, err := Ward(mat.NewSymDense(1, nil))
	if err != nil {
		t.Fatal(err)
	}
	labels, err := dg.Cut(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0}; !reflect.DeepEqual(labels, want) {
		t.Errorf("Cut(1) of singleton: want %v; got %v", want, labels)
	}
}
