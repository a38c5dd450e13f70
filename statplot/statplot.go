// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command statplot draws statistical figures from CSV data frames.
//
// Usage:
//
//      statplot <subcommand> [flags]
//
// The subcommands are:
//
//      pca     project predictors onto principal components
//      elbow   chart within-cluster sum of squares against cluster count
//      logit   fit a logistic model and plot its diagnostics
//
// Every subcommand reads a CSV file with a header row. Columns whose
// values all parse as numbers are numeric; all other columns are
// categorical. Model formulas follow the usual notation: a response
// column name, a tilde, and "+"-separated predictor column names,
// where "." stands for every column other than the response.
//
// Static figures are written as JPEG files. Three dimensional
// projections are interactive and are written as standalone HTML
// pages instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/aclements/go-gg/table"

	"github.com/minhhpham/MToolBox/frame"
	"github.com/minhhpham/MToolBox/viz"
)

type subcommand struct {
	name  string
	desc  string
	run   func()
	flags *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, run func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, run, flags}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags]\n\nSubcommands:\n", os.Args[0])
	names := make([]string, 0, len(subcommands))
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
	}
	os.Exit(2)
}

func main() {
	log.SetPrefix("statplot: ")
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}
	cmd := subcommands[os.Args[1]]
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		usage()
	}
	cmd.flags.Parse(os.Args[2:])
	cmd.run()
}

// readFrame reads the CSV data frame at path, or from stdin if path
// is "-". On any failure it prints the error and exits.
func readFrame(path string) *table.Table {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	t, err := frame.ReadCSV(f)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return t
}

// addExportFlags adds the raster export flags to f and returns the
// options they fill. Left at their zero values, the options select
// the package defaults.
func addExportFlags(f *flag.FlagSet) *viz.ExportOptions {
	o := new(viz.ExportOptions)
	f.IntVar(&o.DPI, "dpi", 0, "raster resolution in `dots` per inch (default 600)")
	f.IntVar(&o.WidthPx, "width", 0, "image width in `pixels` (default 4000)")
	f.IntVar(&o.HeightPx, "height", 0, "image height in `pixels` (default 2000)")
	f.StringVar(&o.Dir, "dir", "", "write into `directory` (default .)")
	f.StringVar(&o.Name, "name", "", "output file `name`, without extension (default \"Plot Output\")")
	return o
}

// exportBase resolves the output directory and base name from o,
// applying the same defaults as viz.SaveJPEG.
func exportBase(o *viz.ExportOptions) (dir, name string) {
	dir, name = o.Dir, o.Name
	if dir == "" {
		dir = "."
	}
	if name == "" {
		name = viz.DefaultName
	}
	return
}
