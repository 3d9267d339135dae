// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rosalind

import (
	"io"
	"strconv"
	"strings"

	"github.com/akualab/dhmm/model/hmm"
)

// Separator is the line written between tables.
const Separator = "--------"

// WritePath writes the decoded states as a single line.
func WritePath(w io.Writer, path []string) error {
	_, err := io.WriteString(w, strings.Join(path, "")+"\n")
	return err
}

// WriteTransitions writes the transition matrix as a tab-separated grid
// with three decimals.
func WriteTransitions(w io.Writer, m *hmm.Model) error {
	_, err := io.WriteString(w, formatGrid(m.States(), m.States(), m.Trans()))
	return err
}

// WriteEmissions writes the emission matrix as a tab-separated grid
// with three decimals.
func WriteEmissions(w io.Writer, m *hmm.Model) error {
	_, err := io.WriteString(w, formatGrid(m.States(), m.Symbols(), m.Emissions()))
	return err
}

// WriteLearnResult writes the transition and emission matrices
// separated by a line of dashes.
func WriteLearnResult(w io.Writer, m *hmm.Model) error {

	if err := WriteTransitions(w, m); err != nil {
		return err
	}
	if _, err := io.WriteString(w, Separator+"\n"); err != nil {
		return err
	}
	return WriteEmissions(w, m)
}

func formatGrid(rows, cols []string, s [][]float64) string {

	var b strings.Builder
	b.WriteString("\t" + strings.Join(cols, "\t") + "\n")
	for i, label := range rows {
		b.WriteString(label)
		for _, v := range s[i] {
			b.WriteByte('\t')
			b.WriteString(strconv.FormatFloat(v, 'f', 3, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
