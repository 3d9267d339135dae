// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"
	"testing"
)

func TestGenerate(t *testing.T) {

	m := makeHMM(t)
	r := NewRand(0)

	states, symbols := m.Generate(r, 1000)
	if len(states) != 1000 || len(symbols) != 1000 {
		t.Fatalf("wrong lengths %d, %d", len(states), len(symbols))
	}

	// Count transitions and emissions.
	var nA, nAB, nAx float64
	for i, s := range states {
		if _, ok := m.stateIndex[s]; !ok {
			t.Fatalf("undeclared state [%s]", s)
		}
		if _, ok := m.symbolIndex[symbols[i]]; !ok {
			t.Fatalf("undeclared symbol [%s]", symbols[i])
		}
		if s != "A" {
			continue
		}
		if symbols[i] == "x" {
			nAx++
		}
		if i < len(states)-1 {
			nA++
			if states[i+1] == "B" {
				nAB++
			}
		}
	}
	if math.Abs(nAB/nA-0.4) > 0.08 {
		t.Fatalf("A=>B frequency is %f, expected about 0.4", nAB/nA)
	}
	if math.Abs(nAx/nA-0.9) > 0.08 {
		t.Fatalf("A=>x frequency is %f, expected about 0.9", nAx/nA)
	}

	if s, o := m.Generate(r, 0); s != nil || o != nil {
		t.Fatalf("expected empty sequences")
	}
}

func TestGenerateSeed(t *testing.T) {

	m := makeHMM3(t)
	s1, o1 := m.Generate(NewRand(5), 50)
	s2, o2 := m.Generate(NewRand(5), 50)
	for i := range s1 {
		if s1[i] != s2[i] || o1[i] != o2[i] {
			t.Fatalf("same seed produced different sequences")
		}
	}
}
