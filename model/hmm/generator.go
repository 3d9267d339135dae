// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"

	"github.com/akualab/dhmm/model"
)

var _ model.Modeler = (*Model)(nil)

// Generate draws a hidden state path of length n from the model and
// the symbols emitted along the path.
func (m *Model) Generate(r *rand.Rand, n int) (states, symbols []string) {

	if n <= 0 {
		return nil, nil
	}
	states = make([]string, n)
	symbols = make([]string, n)

	s := m.draw(m.pi, r)
	for t := 0; t < n; t++ {
		if t > 0 {
			s = m.draw(m.a[s], r)
		}
		states[t] = m.states[s]
		symbols[t] = m.symbols[m.draw(m.b[s], r)]
	}
	return
}

// NewRand returns a random number generator for Generate. Uses
// model.DefaultSeed if seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = model.DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

func (m *Model) draw(dist []float64, r *rand.Rand) int {
	i, err := model.RandIntFromDist(dist, r)
	if err != nil {
		// Rows are validated when the model is built.
		panic(err)
	}
	return i
}
