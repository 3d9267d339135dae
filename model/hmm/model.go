// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hmm provides an implementation of discrete hidden Markov models.

A Model is built once from labeled probability tables and is immutable
thereafter. Labels are mapped to ordinals at construction time so the
dynamic programming loops only touch dense matrices:

	a(i,j) = P[q(t+1) = j | q(t) = i]   transition probabilities [N x N]
	b(i,k) = P[o(t) = k | q(t) = i]     emission probabilities   [N x M]
	π(i)   = P[q(0) = i]                initial distribution     [N]

The package provides Viterbi decoding, the forward-backward algorithm,
and Baum-Welch re-estimation. Probabilities are not log-scaled, so very
long sequences may underflow.
*/
package hmm

import (
	"fmt"
	"math"

	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

const (
	// Max allowed difference between a row sum and one.
	rowSumTol = 1e-2
)

// Entry is one cell of a pair-keyed probability table. For transitions
// From and To are state labels. For emissions From is a state label and
// To is an observation symbol.
type Entry struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Prob float64 `json:"prob"`
}

// Model is a discrete hidden Markov model.
type Model struct {

	// Model name.
	name string

	// Declared labels. The order fixes matrix indices and
	// breaks ties in argmax selection.
	states  []string
	symbols []string

	stateIndex  map[string]int
	symbolIndex map[string]int

	// a(i,j) [N x N]
	a [][]float64

	// b(i,k) [N x M]
	b [][]float64

	// π(i) [N]
	pi []float64

	// Goroutines used for the state loop of one time step.
	workers int
}

// Option type is used to pass options to NewModel().
type Option func(*Model)

// NewModel creates a new HMM from pair-keyed transition and emission
// tables. Every (state, state) and (state, symbol) pair must appear
// exactly once. The model is validated before it is returned.
// The initial state distribution is uniform unless the Initial option
// is used.
func NewModel(states, symbols []string, trans, emit []Entry, options ...Option) (*Model, error) {

	m, err := newModel(states, symbols, options...)
	if err != nil {
		return nil, err
	}

	m.a, err = fillTable("transition", trans, m.stateIndex, m.stateIndex, states, states)
	if err != nil {
		return nil, err
	}
	m.b, err = fillTable("emission", emit, m.stateIndex, m.symbolIndex, states, symbols)
	if err != nil {
		return nil, err
	}

	if err = m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewDenseModel creates a new HMM from dense matrices. Row i of trans
// and emit corresponds to states[i]. Column k of emit corresponds to
// symbols[k]. Matrices are copied.
func NewDenseModel(states, symbols []string, trans, emit [][]float64, options ...Option) (*Model, error) {

	m, err := newModel(states, symbols, options...)
	if err != nil {
		return nil, err
	}

	if err = checkShape("transition", trans, len(states), len(states)); err != nil {
		return nil, err
	}
	if err = checkShape("emission", emit, len(states), len(symbols)); err != nil {
		return nil, err
	}
	m.a = floatx.Copy2D(trans)
	m.b = floatx.Copy2D(emit)

	if err = m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

func newModel(states, symbols []string, options ...Option) (*Model, error) {

	if len(states) == 0 {
		return nil, invalidf("no states")
	}
	if len(symbols) == 0 {
		return nil, invalidf("no observation symbols")
	}

	m := &Model{
		name:        "HMM",
		states:      append([]string(nil), states...),
		symbols:     append([]string(nil), symbols...),
		stateIndex:  make(map[string]int, len(states)),
		symbolIndex: make(map[string]int, len(symbols)),
		workers:     1,
	}

	for i, s := range states {
		if _, ok := m.stateIndex[s]; ok {
			return nil, invalidf("duplicate state [%s]", s)
		}
		m.stateIndex[s] = i
	}
	for k, o := range symbols {
		if _, ok := m.symbolIndex[o]; ok {
			return nil, invalidf("duplicate observation symbol [%s]", o)
		}
		if _, ok := m.stateIndex[o]; ok {
			return nil, invalidf("label [%s] is both a state and an observation symbol", o)
		}
		m.symbolIndex[o] = k
	}

	// Set options.
	for _, option := range options {
		option(m)
	}
	return m, nil
}

// finish sets the default initial distribution and validates the model.
func (m *Model) finish() error {

	if m.pi == nil {
		N := len(m.states)
		m.pi = make([]float64, N)
		for i := range m.pi {
			m.pi[i] = 1 / float64(N)
		}
	}
	if err := m.Validate(); err != nil {
		return err
	}

	if glog.V(2) {
		glog.Infof("New HMM [%s]. Num states = %d, num symbols = %d.", m.name, len(m.states), len(m.symbols))
		glog.Infof("Init. State Probs: %v", m.pi)
		glog.Infof("Trans. Probs:\n%.3f", floatx.Format(m.a))
		glog.Infof("Emission Probs:\n%.3f", floatx.Format(m.b))
	}
	return nil
}

// fillTable converts a pair-keyed table into a dense matrix. Rejects
// unknown labels, duplicate pairs and missing pairs.
func fillTable(kind string, entries []Entry, rows, cols map[string]int, rowLabels, colLabels []string) ([][]float64, error) {

	table := floatx.MakeFloat2D(len(rowLabels), len(colLabels))
	seen := make([][]bool, len(rowLabels))
	for i := range seen {
		seen[i] = make([]bool, len(colLabels))
	}

	for _, e := range entries {
		i, ok := rows[e.From]
		if !ok {
			return nil, invalidf("%s table uses undeclared state [%s]", kind, e.From)
		}
		j, ok := cols[e.To]
		if !ok {
			return nil, invalidf("%s table uses undeclared label [%s]", kind, e.To)
		}
		if seen[i][j] {
			return nil, invalidf("duplicate %s entry [%s => %s]", kind, e.From, e.To)
		}
		seen[i][j] = true
		table[i][j] = e.Prob
	}

	for i, row := range seen {
		for j, ok := range row {
			if !ok {
				return nil, invalidf("missing %s entry [%s => %s]", kind, rowLabels[i], colLabels[j])
			}
		}
	}
	return table, nil
}

func checkShape(kind string, s [][]float64, r, c int) error {

	if len(s) != r {
		return invalidf("%s table has [%d] rows, expected [%d]", kind, len(s), r)
	}
	for i, row := range s {
		if len(row) != c {
			return invalidf("%s row [%d] has [%d] columns, expected [%d]", kind, i, len(row), c)
		}
	}
	return nil
}

// Validate checks table shapes, probability values and row sums.
func (m *Model) Validate() error {

	N := len(m.states)
	if len(m.pi) != N {
		return invalidf("initial distribution has [%d] values, expected [%d]", len(m.pi), N)
	}
	if err := checkShape("transition", m.a, N, N); err != nil {
		return err
	}
	if err := checkShape("emission", m.b, N, len(m.symbols)); err != nil {
		return err
	}

	if err := checkDist("initial distribution", m.pi); err != nil {
		return err
	}
	for i, row := range m.a {
		if err := checkDist("transition row ["+m.states[i]+"]", row); err != nil {
			return err
		}
	}
	for i, row := range m.b {
		if err := checkDist("emission row ["+m.states[i]+"]", row); err != nil {
			return err
		}
	}
	return nil
}

func checkDist(what string, p []float64) error {

	var sum float64
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return invalidf("%s has invalid probability [%g]", what, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > rowSumTol {
		return invalidf("%s sums to [%g]", what, sum)
	}
	return nil
}

// derive returns a model that shares labels and options with m
// and uses the given tables.
func (m *Model) derive(a, b [][]float64) (*Model, error) {

	nm := &Model{
		name:        m.name,
		states:      m.states,
		symbols:     m.symbols,
		stateIndex:  m.stateIndex,
		symbolIndex: m.symbolIndex,
		a:           a,
		b:           b,
		pi:          m.pi,
		workers:     m.workers,
	}
	if err := nm.Validate(); err != nil {
		return nil, err
	}
	return nm, nil
}

// Indices maps observation symbols to ordinals.
func (m *Model) Indices(obs []string) ([]int, error) {

	if len(obs) == 0 {
		return nil, ErrEmptySequence
	}
	idx := make([]int, len(obs))
	for t, o := range obs {
		k, ok := m.symbolIndex[o]
		if !ok {
			return nil, &LookupError{Kind: "symbol", Label: o, Pos: t}
		}
		idx[t] = k
	}
	return idx, nil
}

// Name returns the name of the model.
func (m *Model) Name() string { return m.name }

// NumStates returns the number of hidden states.
func (m *Model) NumStates() int { return len(m.states) }

// NumSymbols returns the size of the observation alphabet.
func (m *Model) NumSymbols() int { return len(m.symbols) }

// States returns the state labels in declared order.
func (m *Model) States() []string { return append([]string(nil), m.states...) }

// Symbols returns the observation symbols in declared order.
func (m *Model) Symbols() []string { return append([]string(nil), m.symbols...) }

// Initial returns a copy of the initial state distribution.
func (m *Model) Initial() []float64 { return append([]float64(nil), m.pi...) }

// Trans returns a copy of the transition matrix.
func (m *Model) Trans() [][]float64 { return floatx.Copy2D(m.a) }

// Emissions returns a copy of the emission matrix.
func (m *Model) Emissions() [][]float64 { return floatx.Copy2D(m.b) }

// TransProb returns the probability of a transition between two states.
func (m *Model) TransProb(from, to string) (float64, error) {

	i, ok := m.stateIndex[from]
	if !ok {
		return 0, &LookupError{Kind: "state", Label: from, Pos: -1}
	}
	j, ok := m.stateIndex[to]
	if !ok {
		return 0, &LookupError{Kind: "state", Label: to, Pos: -1}
	}
	return m.a[i][j], nil
}

// EmissionProb returns the probability that a state emits a symbol.
func (m *Model) EmissionProb(state, symbol string) (float64, error) {

	i, ok := m.stateIndex[state]
	if !ok {
		return 0, &LookupError{Kind: "state", Label: state, Pos: -1}
	}
	k, ok := m.symbolIndex[symbol]
	if !ok {
		return 0, &LookupError{Kind: "symbol", Label: symbol, Pos: -1}
	}
	return m.b[i][k], nil
}

// String returns a summary of the model parameters.
func (m *Model) String() string {
	return fmt.Sprintf("HMM [%s]\nstates: %v\nsymbols: %v\ninitial: %v\ntransitions:\n%.3f\nemissions:\n%.3f",
		m.name, m.states, m.symbols, m.pi, floatx.Format(m.a), floatx.Format(m.b))
}

// Name is an option to set the model name.
func Name(name string) Option {
	return func(m *Model) { m.name = name }
}

// Initial is an option to set the initial state distribution.
// Default is uniform.
func Initial(pi []float64) Option {
	return func(m *Model) { m.pi = append([]float64(nil), pi...) }
}

// Workers option sets the number of goroutines used to compute the
// states of one time step. Results do not depend on this value.
// Default is 1.
func Workers(n int) Option {
	return func(m *Model) {
		if n < 1 {
			n = 1
		}
		m.workers = n
	}
}
