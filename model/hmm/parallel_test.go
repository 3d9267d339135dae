// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"
	"testing"

	"github.com/akualab/dhmm/floatx"
)

func randDist(r *rand.Rand, n int) []float64 {
	d := make([]float64, n)
	for i := range d {
		d[i] = 0.1 + r.Float64()
	}
	floatx.NormalizeRow(d)
	return d
}

func makeRandHMM(t *testing.T, seed int64, N, M int, options ...Option) *Model {

	r := rand.New(rand.NewSource(seed))
	states := make([]string, N)
	trans := make([][]float64, N)
	emit := make([][]float64, N)
	for i := range states {
		states[i] = "s" + string(rune('a'+i))
		trans[i] = randDist(r, N)
		emit[i] = randDist(r, M)
	}
	symbols := make([]string, M)
	for k := range symbols {
		symbols[k] = string(rune('0' + k))
	}
	m, err := NewDenseModel(states, symbols, trans, emit, options...)
	fatalIf(t, err)
	return m
}

// Parallel state loops must produce exactly the same numbers.
func TestWorkers(t *testing.T) {

	seq := makeRandHMM(t, 11, 7, 4)
	par := makeRandHMM(t, 11, 7, 4, Workers(3))
	big := makeRandHMM(t, 11, 7, 4, Workers(64))

	_, obs := seq.Generate(NewRand(3), 25)

	l1, err := seq.ForwardBackward(obs)
	fatalIf(t, err)
	for _, m := range []*Model{par, big} {
		l2, err := m.ForwardBackward(obs)
		fatalIf(t, err)
		if !floatx.Equal2D(l1.Alpha, l2.Alpha) || !floatx.Equal2D(l1.Beta, l2.Beta) {
			t.Fatalf("workers=%d: lattices differ", m.workers)
		}

		p1, v1, err := seq.Viterbi(obs)
		fatalIf(t, err)
		p2, v2, err := m.Viterbi(obs)
		fatalIf(t, err)
		if v1 != v2 {
			t.Fatalf("workers=%d: viterbi prob differs", m.workers)
		}
		for i := range p1 {
			if p1[i] != p2[i] {
				t.Fatalf("workers=%d: viterbi path differs", m.workers)
			}
		}

		m1, err := BaumWelch(seq, obs, 3)
		fatalIf(t, err)
		m2, err := BaumWelch(m, obs, 3)
		fatalIf(t, err)
		if !floatx.Equal2D(m1.Trans(), m2.Trans()) || !floatx.Equal2D(m1.Emissions(), m2.Emissions()) {
			t.Fatalf("workers=%d: trained tables differ", m.workers)
		}
	}
}

func TestForStatesCoversAll(t *testing.T) {

	for _, w := range []int{1, 2, 3, 5, 8} {
		m := makeRandHMM(t, 1, 5, 2, Workers(w))
		hits := make([]int, 5)
		m.forStates(func(j int) { hits[j]++ })
		for j, h := range hits {
			if h != 1 {
				t.Fatalf("workers=%d: state %d visited %d times", w, j, h)
			}
		}
	}
}
