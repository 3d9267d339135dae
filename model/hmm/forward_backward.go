// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"

	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

// Relative tolerance between forward and backward likelihoods.
const likelihoodTol = 1e-6

// Lattice holds the result of the forward-backward algorithm. Rows are
// time steps and columns are states.
type Lattice struct {
	Alpha [][]float64
	Beta  [][]float64

	// P(O|Φ) computed from the last column of alpha and from the first
	// column of beta.
	LikelihoodF float64
	LikelihoodB float64
}

// ForwardBackward computes the alpha and beta lattices for the
// observations. Returns a ConsistencyError if the two likelihood
// estimates disagree.
func (m *Model) ForwardBackward(obs []string) (*Lattice, error) {

	idx, err := m.Indices(obs)
	if err != nil {
		return nil, err
	}
	return m.forwardBackward(idx)
}

// Forward returns the alpha lattice and the observation likelihood.
func (m *Model) Forward(obs []string) ([][]float64, float64, error) {

	idx, err := m.Indices(obs)
	if err != nil {
		return nil, 0, err
	}
	α, p := m.alpha(idx)
	return α, p, nil
}

// Backward returns the beta lattice and the observation likelihood.
func (m *Model) Backward(obs []string) ([][]float64, float64, error) {

	idx, err := m.Indices(obs)
	if err != nil {
		return nil, 0, err
	}
	β, p := m.beta(idx)
	return β, p, nil
}

// Likelihood returns P(O|Φ), the probability of the observations
// under the model.
func (m *Model) Likelihood(obs []string) (float64, error) {

	idx, err := m.Indices(obs)
	if err != nil {
		return 0, err
	}
	_, p := m.alpha(idx)
	return p, nil
}

func (m *Model) forwardBackward(obs []int) (*Lattice, error) {

	α, pf := m.alpha(obs)
	β, pb := m.beta(obs)

	if err := crossCheck(pf, pb); err != nil {
		return nil, err
	}
	return &Lattice{
		Alpha:       α,
		Beta:        β,
		LikelihoodF: pf,
		LikelihoodB: pb,
	}, nil
}

// crossCheck compares the two likelihood estimates using a tolerance
// relative to the forward estimate.
func crossCheck(pf, pb float64) error {
	if math.Abs(pf-pb) > likelihoodTol*math.Abs(pf) {
		return &ConsistencyError{Forward: pf, Backward: pb}
	}
	return nil
}

// Compute alphas. Indices are: α(time, state)
//
// 1. Initialization: α(0,j) = π(j) b(j,o(0))
// 2. Induction:      α(t,j) = b(j,o(t)) sum_i α(t-1,i) a(i,j); 1<=t<T
// 3. Termination:    P(O|Φ) = sum_j α(T-1,j)
func (m *Model) alpha(obs []int) (α [][]float64, prob float64) {

	N := len(m.states)
	T := len(obs)
	α = floatx.MakeFloat2D(T, N)

	for j := 0; j < N; j++ {
		α[0][j] = m.pi[j] * m.b[j][obs[0]]
	}

	for t := 1; t < T; t++ {
		prev, cur, o := α[t-1], α[t], obs[t]
		m.forStates(func(j int) {
			var sum float64
			for i := 0; i < N; i++ {
				sum += prev[i] * m.a[i][j]
			}
			cur[j] = m.b[j][o] * sum
		})
	}

	for _, v := range α[T-1] {
		prob += v
	}

	if glog.V(4) {
		glog.Infof("alpha:\n%.4g", floatx.Format(α))
	}
	return
}

// Compute betas. Indices are: β(time, state)
//
// 1. Initialization: β(T-1,i) = 1
// 2. Induction:      β(t,i) = sum_j a(i,j) b(j,o(t+1)) β(t+1,j); t=T-2,...,0
// 3. Termination:    P(O|Φ) = sum_i π(i) b(i,o(0)) β(0,i)
func (m *Model) beta(obs []int) (β [][]float64, prob float64) {

	N := len(m.states)
	T := len(obs)
	β = floatx.MakeFloat2D(T, N)

	for i := 0; i < N; i++ {
		β[T-1][i] = 1
	}

	for t := T - 2; t >= 0; t-- {
		next, cur, o := β[t+1], β[t], obs[t+1]
		m.forStates(func(i int) {
			var sum float64
			for j := 0; j < N; j++ {
				sum += m.a[i][j] * m.b[j][o] * next[j]
			}
			cur[i] = sum
		})
	}

	for i := 0; i < N; i++ {
		prob += m.pi[i] * m.b[i][obs[0]] * β[0][i]
	}

	if glog.V(4) {
		glog.Infof("beta:\n%.4g", floatx.Format(β))
	}
	return
}
