// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
)

// A Scene3D is an interactive three dimensional scatter figure. It
// renders as a self-contained HTML page that can be rotated and
// zoomed in a browser, so it has no raster form and cannot be passed
// to SaveJPEG.
type Scene3D struct {
	chart *charts.Scatter3D
}

// WriteHTML writes the scene to w as a standalone HTML page.
func (s *Scene3D) WriteHTML(w io.Writer) error {
	return s.chart.Render(w)
}

// SaveHTML writes the scene to the named file.
func (s *Scene3D) SaveHTML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.chart.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
