// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned when an observation sequence has no symbols.
var ErrEmptySequence = errors.New("hmm: empty observation sequence")

// ValidationError reports a malformed model. It is returned when the model
// is built and no computation is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "hmm: invalid model: " + e.Msg
}

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// LookupError reports a state or symbol that has no table entry.
type LookupError struct {
	// Kind is "state" or "symbol".
	Kind  string
	Label string

	// Pos is the position in the observation sequence, or -1 when the
	// label was not read from a sequence.
	Pos int
}

func (e *LookupError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("hmm: %s [%s] at position %d has no emission entry", e.Kind, e.Label, e.Pos)
	}
	return fmt.Sprintf("hmm: unknown %s [%s]", e.Kind, e.Label)
}

// ConsistencyError is returned when the forward and backward passes
// disagree on the observation likelihood. It signals a computation
// defect rather than bad input.
type ConsistencyError struct {
	Forward  float64
	Backward float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("hmm: forward likelihood [%g] and backward likelihood [%g] disagree", e.Forward, e.Backward)
}

// NumericDegeneracyError is returned by the trainer when the likelihood
// is not a positive finite number or a re-estimated row sums to zero.
type NumericDegeneracyError struct {
	Iteration int
	Msg       string
}

func (e *NumericDegeneracyError) Error() string {
	return fmt.Sprintf("hmm: numeric degeneracy in iteration %d: %s", e.Iteration, e.Msg)
}
