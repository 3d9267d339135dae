// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"strconv"

	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

// Viterbi returns the most probable sequence of hidden states for the
// observations and the joint probability of that path.
func (m *Model) Viterbi(obs []string) ([]string, float64, error) {

	idx, err := m.Indices(obs)
	if err != nil {
		return nil, 0, err
	}
	bt, prob := m.viterbi(idx)
	path := make([]string, len(bt))
	for t, i := range bt {
		path[t] = m.states[i]
	}
	return path, prob, nil
}

// ViterbiIndices is the same as Viterbi using state and symbol ordinals.
func (m *Model) ViterbiIndices(obs []int) ([]int, float64, error) {

	if len(obs) == 0 {
		return nil, 0, ErrEmptySequence
	}
	for t, k := range obs {
		if k < 0 || k >= len(m.symbols) {
			return nil, 0, &LookupError{Kind: "symbol", Label: strconv.Itoa(k), Pos: t}
		}
	}
	bt, prob := m.viterbi(obs)
	return bt, prob, nil
}

// The viterbi algorithm computes the most probable sequence of states.
// Indices are: delta(time, state)
//
// 1. Initialization: delta(0,j) = π(j) b(j,o(0))
// 2. Recursion:      delta(t,j) = max_k [delta(t-1,k) a(k,j)] b(j,o(t))
//                    index(t,j) = argmax_k [delta(t-1,k) a(k,j)]
// 3. Termination:    z*(T-1) = argmax_j delta(T-1,j)
// 4. Backtracking:   z*(t) = index(t+1, z*(t+1)), t = T-2,...,0
//
// Ties go to the lowest state index: the scan starts at k=0 and only
// a strictly greater value replaces the current max.
func (m *Model) viterbi(obs []int) (bt []int, prob float64) {

	N := len(m.states)
	T := len(obs)

	delta := floatx.MakeFloat2D(T, N)
	index := floatx.MakeInt2D(T, N)
	bt = make([]int, T)

	for j := 0; j < N; j++ {
		delta[0][j] = m.pi[j] * m.b[j][obs[0]]
		index[0][j] = -1
	}

	for t := 1; t < T; t++ {
		prev, cur, o := delta[t-1], delta[t], obs[t]
		m.forStates(func(j int) {
			max := prev[0] * m.a[0][j]
			argmax := 0
			for k := 1; k < N; k++ {
				p := prev[k] * m.a[k][j]
				if p > max {
					max = p
					argmax = k
				}
			}
			cur[j] = max * m.b[j][o]
			index[t][j] = argmax
		})
	}

	last := delta[T-1]
	prob = last[0]
	argmax := 0
	for j := 1; j < N; j++ {
		if last[j] > prob {
			prob = last[j]
			argmax = j
		}
	}
	bt[T-1] = argmax
	for t := T - 1; t > 0; t-- {
		bt[t-1] = index[t][bt[t]]
	}

	if glog.V(4) {
		glog.Infof("viterbi delta:\n%.4g", floatx.Format(delta))
		glog.Infof("viterbi path: %v, prob: %g", bt, prob)
	}
	return bt, prob
}
