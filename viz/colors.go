// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// categoryColors is the qualitative palette for categorical series.
// The hues match the default cycle of the gg plot stack.
var categoryColors = []color.RGBA{
	{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff},
	{R: 0x55, G: 0xa8, B: 0x68, A: 0xff},
	{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff},
	{R: 0x81, G: 0x72, B: 0xb2, A: 0xff},
	{R: 0xcc, G: 0xb9, B: 0x74, A: 0xff},
	{R: 0x64, G: 0xb5, B: 0xcd, A: 0xff},
}

// categoryColor returns the color for categorical series i, cycling
// through the palette.
func categoryColor(i int) color.Color {
	return categoryColors[i%len(categoryColors)]
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// continuousStops samples the viridis palette into n hex stops for
// gradient color maps.
func continuousStops(n int) []string {
	stops := make([]string, n)
	for i := range stops {
		stops[i] = hexColor(palette.Viridis.Map(float64(i) / float64(n-1)))
	}
	return stops
}
