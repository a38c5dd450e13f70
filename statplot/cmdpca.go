// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/minhhpham/MToolBox/design"
	"github.com/minhhpham/MToolBox/viz"
)

var cmdPCAFlags = flag.NewFlagSet(os.Args[0]+" pca", flag.ExitOnError)

var pca struct {
	input   string
	formula string
	dim     int
	export  *viz.ExportOptions
}

func init() {
	f := cmdPCAFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s pca -f <formula> [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&pca.input, "i", "-", "read CSV data from `file`")
	f.StringVar(&pca.formula, "f", "", "model `formula`, e.g. \"class ~ .\"")
	f.IntVar(&pca.dim, "dim", 0, "number of axes, 2 or 3 (default 3, or the design width if smaller)")
	pca.export = addExportFlags(f)
	registerSubcommand("pca", "[flags] - project predictors onto principal components", cmdPCA, f)
}

func cmdPCA() {
	if pca.formula == "" || cmdPCAFlags.NArg() > 0 {
		cmdPCAFlags.Usage()
		os.Exit(2)
	}
	formula, err := design.Parse(pca.formula)
	if err != nil {
		log.Fatal(err)
	}

	pp, err := viz.Projection(formula, readFrame(pca.input), pca.dim)
	if err != nil {
		log.Fatal(err)
	}
	for i, fr := range pp.VarFrac {
		fmt.Printf("PC%d: %.4f of variance\n", i+1, fr)
	}
	fmt.Printf("plotted components: %.4f of variance\n", pp.VarTotal)

	if pp.Scene != nil {
		dir, name := exportBase(pca.export)
		path := filepath.Join(dir, name+".html")
		if err := pp.Scene.SaveHTML(path); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}
	if err := viz.SaveJPEG(pp.Figure, *pca.export); err != nil {
		log.Fatal(err)
	}
}
