// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// Two state model used across tests:
//
//   states: A, B    symbols: x, y    π = [0.5, 0.5]
//   a = | 0.6 0.4 |   b = | 0.9 0.1 |
//       | 0.3 0.7 |       | 0.2 0.8 |
func makeHMM(t *testing.T, options ...Option) *Model {

	trans := []Entry{
		{"A", "A", 0.6}, {"A", "B", 0.4},
		{"B", "A", 0.3}, {"B", "B", 0.7},
	}
	emit := []Entry{
		{"A", "x", 0.9}, {"A", "y", 0.1},
		{"B", "x", 0.2}, {"B", "y", 0.8},
	}
	m, err := NewModel([]string{"A", "B"}, []string{"x", "y"}, trans, emit, options...)
	fatalIf(t, err)
	return m
}

// Two state, three symbol model from the Rosalind BA10K sample problem.
func makeHMM3(t *testing.T, options ...Option) *Model {

	m, err := NewDenseModel([]string{"A", "B"}, []string{"x", "y", "z"},
		[][]float64{{0.019, 0.981}, {0.668, 0.332}},
		[][]float64{{0.175, 0.182, 0.643}, {0.397, 0.596, 0.007}},
		options...)
	fatalIf(t, err)
	return m
}

func obsOf(s string) []string { return strings.Split(s, "") }

// jointProb computes P(O, Q | Φ) for one explicit state path.
func jointProb(m *Model, path []int, obs []int) float64 {
	p := m.pi[path[0]] * m.b[path[0]][obs[0]]
	for t := 1; t < len(obs); t++ {
		p *= m.a[path[t-1]][path[t]] * m.b[path[t]][obs[t]]
	}
	return p
}

// allPaths enumerates every state path of length T in lexicographic
// order of state indices.
func allPaths(N, T int) [][]int {
	var paths [][]int
	total := int(math.Pow(float64(N), float64(T)))
	for n := 0; n < total; n++ {
		path := make([]int, T)
		v := n
		for t := T - 1; t >= 0; t-- {
			path[t] = v % N
			v /= N
		}
		paths = append(paths, path)
	}
	return paths
}

func fatalIf(t *testing.T, err error) {
	if err != nil {
		t.Fatal(err)
	}
}

func checkRows(t *testing.T, what string, s [][]float64, tol float64) {
	for i, row := range s {
		var sum float64
		for _, v := range row {
			if v < 0 || math.IsNaN(v) {
				t.Errorf("%s row %d has invalid value %g", what, i, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > tol {
			t.Errorf("%s row %d sums to %.12f", what, i, sum)
		}
	}
}

func isLookupError(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}
