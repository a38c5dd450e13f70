// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Defaults for ExportOptions.
const (
	DefaultDPI    = 600
	DefaultWidth  = 4000
	DefaultHeight = 2000
	DefaultName   = "Plot Output"
)

// ExportOptions control SaveJPEG. The zero value of every field
// selects its default.
type ExportOptions struct {
	// DPI is the raster resolution in dots per inch.
	DPI int

	// WidthPx and HeightPx are the image dimensions in pixels.
	WidthPx, HeightPx int

	// Dir is the directory to write into. It must already exist.
	Dir string

	// Name is the file name, without the ".jpg" extension.
	Name string
}

// SaveJPEG renders fig at the requested resolution and writes it to
// <Dir>/<Name>.jpg. The directory is not created if it does not
// exist; the resulting error is returned.
func SaveJPEG(fig Figure, o ExportOptions) error {
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.WidthPx == 0 {
		o.WidthPx = DefaultWidth
	}
	if o.HeightPx == 0 {
		o.HeightPx = DefaultHeight
	}
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.DPI < 0 || o.WidthPx < 0 || o.HeightPx < 0 {
		return fmt.Errorf("viz: negative export dimensions")
	}

	// vg lengths are physical, so the pixel counts determine the
	// canvas size in inches at the requested DPI.
	w := vg.Length(o.WidthPx) / vg.Length(o.DPI) * vg.Inch
	h := vg.Length(o.HeightPx) / vg.Length(o.DPI) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(o.DPI))
	fig.Draw(draw.New(c))

	f, err := os.Create(filepath.Join(o.Dir, o.Name+".jpg"))
	if err != nil {
		return err
	}
	if _, err := (vgimg.JpegCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
