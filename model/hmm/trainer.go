// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"
	"math"

	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

// Relative slack before a likelihood decrease is reported.
const decreaseTol = 1e-9

// Iteration describes one completed Baum-Welch iteration.
type Iteration struct {
	// Zero-based iteration number.
	Index int

	// P(O|Φ) under the model that entered the iteration.
	Likelihood float64

	// The re-estimated model.
	Model *Model
}

// Trainer estimates model parameters using the Baum-Welch algorithm.
// A Trainer is not safe for concurrent use.
type Trainer struct {
	updateTP    bool
	updateEP    bool
	onIteration func(Iteration)
	history     []float64
}

// TrainerOption type is used to pass options to NewTrainer().
type TrainerOption func(*Trainer)

// NewTrainer creates a new Baum-Welch trainer.
func NewTrainer(options ...TrainerOption) *Trainer {

	tr := &Trainer{
		updateTP: true,
		updateEP: true,
	}
	for _, option := range options {
		option(tr)
	}
	return tr
}

// BaumWelch runs n iterations of Baum-Welch using default trainer options.
func BaumWelch(m *Model, obs []string, n int) (*Model, error) {
	return NewTrainer().Train(m, obs, n)
}

// Train runs n iterations of Baum-Welch starting from m. Each iteration
// builds a new model; m is never modified. With n = 0 it returns m.
// The initial state distribution is not re-estimated.
func (tr *Trainer) Train(m *Model, obs []string, n int) (*Model, error) {

	if n < 0 {
		return nil, fmt.Errorf("hmm: negative number of iterations [%d]", n)
	}
	idx, err := m.Indices(obs)
	if err != nil {
		return nil, err
	}

	tr.history = tr.history[:0]
	glog.V(1).Infof("training hmm [%s] for %d iterations, T=%d", m.name, n, len(idx))

	cur := m
	for i := 0; i < n; i++ {
		next, lik, err := tr.iterate(cur, idx, i)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			prev := tr.history[i-1]
			if lik < prev-decreaseTol*prev {
				glog.Warningf("likelihood decreased in iteration %d: %g => %g", i, prev, lik)
			}
		}
		tr.history = append(tr.history, lik)
		glog.V(2).Infof("iter: %4d | P(O|Φ): %e", i, lik)

		if tr.onIteration != nil {
			tr.onIteration(Iteration{Index: i, Likelihood: lik, Model: next})
		}
		cur = next
	}
	return cur, nil
}

// History returns the likelihood of the model that entered each
// iteration of the last call to Train.
func (tr *Trainer) History() []float64 {
	return append([]float64(nil), tr.history...)
}

// iterate does one expectation-maximization step.
//
// Expected transitions and emissions for a single sequence:
//
//                 sum_{t=0}^{T-2} α(t,i) a(i,j) b(j,o(t+1)) β(t+1,j)
//   a_hat(i,j) = ----------------------------------------------------
//                                    P(O|Φ)
//
//                 sum_{t: o(t)=k} α(t,i) β(t,i)
//   b_hat(i,k) = -------------------------------
//                           P(O|Φ)
//
// Rows are then normalized to sum to one.
func (tr *Trainer) iterate(m *Model, obs []int, iter int) (*Model, float64, error) {

	lat, err := m.forwardBackward(obs)
	if err != nil {
		return nil, 0, err
	}
	prob := lat.LikelihoodF
	if !(prob > 0) || math.IsInf(prob, 0) {
		return nil, prob, &NumericDegeneracyError{
			Iteration: iter,
			Msg:       fmt.Sprintf("observation likelihood is [%g]", prob),
		}
	}

	α, β := lat.Alpha, lat.Beta
	N := len(m.states)
	M := len(m.symbols)
	T := len(obs)

	var a, b [][]float64
	if tr.updateTP {
		a = floatx.MakeFloat2D(N, N)
		m.forStates(func(i int) {
			for j := 0; j < N; j++ {
				var sum float64
				for t := 0; t < T-1; t++ {
					sum += α[t][i] * m.a[i][j] * m.b[j][obs[t+1]] * β[t+1][j]
				}
				a[i][j] = sum / prob
			}
		})
		for i, row := range a {
			if floatx.NormalizeRow(row) == 0 {
				return nil, prob, &NumericDegeneracyError{
					Iteration: iter,
					Msg:       fmt.Sprintf("expected transitions from state [%s] sum to zero", m.states[i]),
				}
			}
		}
	} else {
		a = m.a
	}

	if tr.updateEP {
		b = floatx.MakeFloat2D(N, M)
		m.forStates(func(i int) {
			row := b[i]
			for t := 0; t < T; t++ {
				row[obs[t]] += α[t][i] * β[t][i]
			}
			for k := range row {
				row[k] /= prob
			}
		})
		for i, row := range b {
			if floatx.NormalizeRow(row) == 0 {
				return nil, prob, &NumericDegeneracyError{
					Iteration: iter,
					Msg:       fmt.Sprintf("expected emissions from state [%s] sum to zero", m.states[i]),
				}
			}
		}
	} else {
		b = m.b
	}

	next, err := m.derive(a, b)
	if err != nil {
		return nil, prob, err
	}
	if glog.V(3) {
		glog.Infof("iter: %d, trans. probs:\n%.3f", iter, floatx.Format(a))
		glog.Infof("iter: %d, emission probs:\n%.3f", iter, floatx.Format(b))
	}
	return next, prob, nil
}

// UpdateTP option to update state transition probabilities.
// Default is true.
func UpdateTP(flag bool) TrainerOption {
	return func(tr *Trainer) { tr.updateTP = flag }
}

// UpdateEP option to update emission probabilities.
// Default is true.
func UpdateEP(flag bool) TrainerOption {
	return func(tr *Trainer) { tr.updateEP = flag }
}

// OnIteration sets a function that is called after each iteration.
func OnIteration(fn func(Iteration)) TrainerOption {
	return func(tr *Trainer) { tr.onIteration = fn }
}
