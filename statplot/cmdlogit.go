// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/minhhpham/MToolBox/design"
	"github.com/minhhpham/MToolBox/glm"
	"github.com/minhhpham/MToolBox/viz"
)

var cmdLogitFlags = flag.NewFlagSet(os.Args[0]+" logit", flag.ExitOnError)

var logit struct {
	input   string
	formula string
	export  *viz.ExportOptions
}

func init() {
	f := cmdLogitFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s logit -f <formula> [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&logit.input, "i", "-", "read CSV data from `file`")
	f.StringVar(&logit.formula, "f", "", "model `formula`, e.g. \"outcome ~ .\"")
	logit.export = addExportFlags(f)
	registerSubcommand("logit", "[flags] - fit a logistic model and plot its diagnostics", cmdLogit, f)
}

func cmdLogit() {
	if logit.formula == "" || cmdLogitFlags.NArg() > 0 {
		cmdLogitFlags.Usage()
		os.Exit(2)
	}
	formula, err := design.Parse(logit.formula)
	if err != nil {
		log.Fatal(err)
	}

	m, err := glm.Fit(formula, readFrame(logit.input), glm.Binomial)
	if err != nil {
		log.Fatal(err)
	}
	d, err := viz.LogisticDiagnostics(m)
	if err != nil {
		log.Fatal(err)
	}

	table.Fprint(os.Stdout, d.VIF)

	base := logit.export.Name
	if base == "" {
		base = viz.DefaultName
	}
	parts := []struct {
		suffix string
		fig    viz.Figure
	}{
		{"Linearity", d.Linearity},
		{"Influence", d.Influence},
		{"Residuals", d.Residuals},
	}
	for _, part := range parts {
		o := *logit.export
		o.Name = base + " " + part.suffix
		if err := viz.SaveJPEG(part.fig, o); err != nil {
			log.Fatal(err)
		}
	}
}
