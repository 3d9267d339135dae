// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "math/rand"

const (
	// DefaultSeed provided for model implementation.
	DefaultSeed = 33
)

// A Modeler type is a complete implementation of a discrete sequence model.
type Modeler interface {

	// The model name.
	Name() string

	// Number of hidden states.
	NumStates() int

	Scorer
	Decoder
	Sampler
}

// Scorer computes the total probability of an observation sequence.
type Scorer interface {
	Likelihood(obs []string) (float64, error)
}

// Decoder returns the most likely sequence of hidden states and
// its joint probability.
type Decoder interface {
	Viterbi(obs []string) ([]string, float64, error)
}

// The Sampler type generates random data using the model.
type Sampler interface {
	// Returns a hidden state path of length n and the symbols
	// emitted along that path.
	Generate(r *rand.Rand, n int) (states, symbols []string)
}
