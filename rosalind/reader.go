// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rosalind reads and writes HMM problems in the text format used by
the Rosalind bioinformatics exercises BA10C (Viterbi decoding) and BA10K
(Baum-Welch learning).

Sections are separated by lines of dashes. A decoding problem looks like
this:

	xyxzzxyxyy
	--------
	x   y   z
	--------
	A   B
	--------
	    A       B
	A   0.641   0.359
	B   0.729   0.271
	--------
	    x       y       z
	A   0.117   0.691   0.192
	B   0.097   0.42    0.483

A learning problem has an extra first section with the number of
iterations.
*/
package rosalind

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akualab/dhmm/model/hmm"
	"github.com/golang/glog"
	"golang.org/x/text/unicode/norm"
)

// SyntaxError reports malformed problem text.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rosalind: line %d: %s", e.Line, e.Msg)
}

// Problem holds the parsed content of a problem file.
type Problem struct {
	// Number of Baum-Welch iterations. Zero for decoding problems.
	Iterations int

	Sequence    []string
	Symbols     []string
	States      []string
	Transitions []hmm.Entry
	Emissions   []hmm.Entry
}

// Model builds a validated model from the problem tables. The initial
// state distribution is uniform unless overridden with an option.
func (p *Problem) Model(options ...hmm.Option) (*hmm.Model, error) {
	return hmm.NewModel(p.States, p.Symbols, p.Transitions, p.Emissions, options...)
}

type line struct {
	n    int
	text string
}

type section struct {
	// Line number where the section starts.
	start int
	lines []line
}

// ReadDecodeProblem reads a BA10C problem.
func ReadDecodeProblem(r io.Reader) (*Problem, error) {

	secs, last, err := readSections(r)
	if err != nil {
		return nil, err
	}
	if len(secs) != 5 {
		return nil, &SyntaxError{Line: last, Msg: fmt.Sprintf("expected 5 sections, found %d", len(secs))}
	}
	p := new(Problem)
	if err = p.parse(secs); err != nil {
		return nil, err
	}
	glog.V(2).Infof("read decode problem: %d states, %d symbols, T=%d", len(p.States), len(p.Symbols), len(p.Sequence))
	return p, nil
}

// ReadLearnProblem reads a BA10K problem.
func ReadLearnProblem(r io.Reader) (*Problem, error) {

	secs, last, err := readSections(r)
	if err != nil {
		return nil, err
	}
	if len(secs) != 6 {
		return nil, &SyntaxError{Line: last, Msg: fmt.Sprintf("expected 6 sections, found %d", len(secs))}
	}

	l, err := single(secs[0])
	if err != nil {
		return nil, err
	}
	n, e := strconv.Atoi(strings.TrimSpace(l.text))
	if e != nil || n < 0 {
		return nil, &SyntaxError{Line: l.n, Msg: fmt.Sprintf("invalid number of iterations [%s]", l.text)}
	}

	p := &Problem{Iterations: n}
	if err = p.parse(secs[1:]); err != nil {
		return nil, err
	}
	glog.V(2).Infof("read learn problem: %d states, %d symbols, T=%d, %d iterations",
		len(p.States), len(p.Symbols), len(p.Sequence), p.Iterations)
	return p, nil
}

// parse reads the sequence, symbols, states, transition and emission
// sections in that order.
func (p *Problem) parse(secs []section) error {

	seqLine, err := single(secs[0])
	if err != nil {
		return err
	}

	if p.Symbols, err = labels(secs[1], "observation symbols"); err != nil {
		return err
	}
	if p.States, err = labels(secs[2], "states"); err != nil {
		return err
	}
	if p.Sequence, err = tokenize(seqLine, p.Symbols); err != nil {
		return err
	}
	if p.Transitions, err = grid(secs[3], "transition"); err != nil {
		return err
	}
	if p.Emissions, err = grid(secs[4], "emission"); err != nil {
		return err
	}
	return nil
}

// readSections splits normalized text into sections. Blank lines are
// ignored. Returns the number of the last line.
func readSections(r io.Reader) ([]section, int, error) {

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}
	text := strings.TrimSuffix(norm.NFC.String(string(b)), "\n")

	var secs []section
	cur := section{start: 1}
	n := 0
	for i, s := range strings.Split(text, "\n") {
		n = i + 1
		s = strings.TrimRight(s, "\r")
		if isSeparator(s) {
			secs = append(secs, cur)
			cur = section{start: n + 1}
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		cur.lines = append(cur.lines, line{n: n, text: s})
	}
	secs = append(secs, cur)
	return secs, n, nil
}

func isSeparator(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && strings.Trim(s, "-") == ""
}

func single(sec section) (line, error) {
	if len(sec.lines) != 1 {
		return line{}, &SyntaxError{Line: sec.start, Msg: fmt.Sprintf("expected one line, found %d", len(sec.lines))}
	}
	return sec.lines[0], nil
}

func labels(sec section, what string) ([]string, error) {
	l, err := single(sec)
	if err != nil {
		return nil, err
	}
	f := strings.Fields(l.text)
	if len(f) == 0 {
		return nil, &SyntaxError{Line: l.n, Msg: "no " + what}
	}
	return f, nil
}

// tokenize splits the observed sequence. Whitespace-separated tokens are
// used as is. Otherwise every character is one symbol, which requires
// single-character symbols.
func tokenize(l line, symbols []string) ([]string, error) {

	f := strings.Fields(l.text)
	if len(f) > 1 {
		return f, nil
	}
	for _, s := range symbols {
		if utf8.RuneCountInString(s) != 1 {
			return nil, &SyntaxError{Line: l.n, Msg: fmt.Sprintf("symbol [%s] has more than one character, separate the sequence with spaces", s)}
		}
	}
	return strings.Split(strings.TrimSpace(l.text), ""), nil
}

// grid reads a labeled probability matrix. The first line has the column
// labels; each other line has a row label followed by one value per column.
func grid(sec section, kind string) ([]hmm.Entry, error) {

	if len(sec.lines) < 2 {
		return nil, &SyntaxError{Line: sec.start, Msg: fmt.Sprintf("%s table needs a header and at least one row", kind)}
	}
	cols := strings.Fields(sec.lines[0].text)

	var entries []hmm.Entry
	for _, l := range sec.lines[1:] {
		f := strings.Fields(l.text)
		if len(f) != len(cols)+1 {
			return nil, &SyntaxError{Line: l.n, Msg: fmt.Sprintf("%s row has %d values, expected %d", kind, len(f)-1, len(cols))}
		}
		for j, v := range f[1:] {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, &SyntaxError{Line: l.n, Msg: fmt.Sprintf("invalid probability [%s]", v)}
			}
			entries = append(entries, hmm.Entry{From: f[0], To: cols[j], Prob: p})
		}
	}
	return entries, nil
}
