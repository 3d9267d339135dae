// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/floatx"
)

func TestWriteReadFile(t *testing.T) {

	m := makeHMM3(t, Name("ba10k"), Initial([]float64{0.25, 0.75}))
	fn := filepath.Join(t.TempDir(), "models", "hmm.json")
	fatalIf(t, m.WriteFile(fn))

	x, err := ReadFile(fn)
	fatalIf(t, err)

	if x.Name() != "ba10k" {
		t.Fatalf("wrong name [%s]", x.Name())
	}
	dhmm.CompareSliceString(t, m.States(), x.States(), "states")
	dhmm.CompareSliceString(t, m.Symbols(), x.Symbols(), "symbols")
	dhmm.CompareSliceFloat(t, m.Initial(), x.Initial(), "initial", 1e-15)
	if !floatx.Equal2D(m.Trans(), x.Trans()) {
		t.Fatalf("transitions differ after read")
	}
	if !floatx.Equal2D(m.Emissions(), x.Emissions()) {
		t.Fatalf("emissions differ after read")
	}
}

func TestUnmarshalInvalid(t *testing.T) {

	data := `{
  "name": "bad",
  "states": ["A", "B"],
  "symbols": ["x", "y"],
  "transitions": {"A": {"A": 0.5, "B": 0.5}, "B": {"A": 0.5}},
  "emissions": {"A": {"x": 1, "y": 0}, "B": {"x": 0, "y": 1}}
}`
	var m Model
	err := json.Unmarshal([]byte(data), &m)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	t.Log(err)
}

func TestUnmarshalDefaults(t *testing.T) {

	data := `{
  "states": ["A", "B"],
  "symbols": ["x", "y"],
  "transitions": {"A": {"A": 0.5, "B": 0.5}, "B": {"A": 0.5, "B": 0.5}},
  "emissions": {"A": {"x": 1, "y": 0}, "B": {"x": 0, "y": 1}}
}`
	var m Model
	fatalIf(t, json.Unmarshal([]byte(data), &m))
	if m.Name() != "HMM" {
		t.Fatalf("expected default name, got [%s]", m.Name())
	}
	dhmm.CompareSliceFloat(t, []float64{0.5, 0.5}, m.Initial(), "initial", 1e-15)
}
