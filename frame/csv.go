// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// ReadCSV reads comma-separated data with a header row into a table.
// A column whose every value parses as a number becomes a []float64
// column, with empty and "NA" cells mapped to NaN; any other column
// becomes a []string column. Every record must have the same number
// of fields as the header. Blank lines are skipped.
func ReadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("frame: missing header row")
	} else if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("frame: duplicate column %q", name)
		}
		seen[name] = true
	}

	cols := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		for j, v := range rec {
			cols[j] = append(cols[j], v)
		}
	}

	b := new(table.Builder)
	for j, name := range header {
		b.Add(name, typeColumn(cols[j]))
	}
	return b.Done(), nil
}

// typeColumn converts raw CSV cells to the most specific column type.
func typeColumn(raw []string) interface{} {
	xs := make([]float64, len(raw))
	for i, v := range raw {
		if v == "" || v == "NA" {
			xs[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return raw
		}
		xs[i] = x
	}
	return xs
}
