// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/minhhpham/MToolBox/viz"
)

var cmdElbowFlags = flag.NewFlagSet(os.Args[0]+" elbow", flag.ExitOnError)

var elbow struct {
	input  string
	kmax   int
	export *viz.ExportOptions
}

func init() {
	f := cmdElbowFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s elbow [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&elbow.input, "i", "-", "read CSV data from `file`; every column must be numeric")
	f.IntVar(&elbow.kmax, "kmax", 0, "chart cluster counts 1 through `kmax` (default 8)")
	elbow.export = addExportFlags(f)
	registerSubcommand("elbow", "[flags] - chart within-cluster sum of squares against cluster count", cmdElbow, f)
}

func cmdElbow() {
	if cmdElbowFlags.NArg() > 0 {
		cmdElbowFlags.Usage()
		os.Exit(2)
	}
	fig, err := viz.Elbow(readFrame(elbow.input), elbow.kmax)
	if err != nil {
		log.Fatal(err)
	}
	if err := viz.SaveJPEG(fig, *elbow.export); err != nil {
		log.Fatal(err)
	}
}
