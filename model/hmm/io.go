// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"encoding/json"

	"github.com/akualab/dhmm"
	"github.com/golang/glog"
)

// jsonModel is the wire format of a Model. Tables are keyed by label.
type jsonModel struct {
	Name        string                        `json:"name"`
	States      []string                      `json:"states"`
	Symbols     []string                      `json:"symbols"`
	Initial     []float64                     `json:"initial,omitempty"`
	Transitions map[string]map[string]float64 `json:"transitions"`
	Emissions   map[string]map[string]float64 `json:"emissions"`
}

func toNested(labels, cols []string, s [][]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(labels))
	for i, row := range s {
		r := make(map[string]float64, len(cols))
		for j, v := range row {
			r[cols[j]] = v
		}
		out[labels[i]] = r
	}
	return out
}

func fromNested(table map[string]map[string]float64) []Entry {
	var entries []Entry
	for from, row := range table {
		for to, p := range row {
			entries = append(entries, Entry{From: from, To: to, Prob: p})
		}
	}
	return entries
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(&jsonModel{
		Name:        m.name,
		States:      m.states,
		Symbols:     m.symbols,
		Initial:     m.pi,
		Transitions: toNested(m.states, m.states, m.a),
		Emissions:   toNested(m.states, m.symbols, m.b),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. The decoded
// model is validated.
func (m *Model) UnmarshalJSON(b []byte) error {

	var jm jsonModel
	if err := json.Unmarshal(b, &jm); err != nil {
		return err
	}
	options := []Option{Initial(jm.Initial)}
	if jm.Name != "" {
		options = append(options, Name(jm.Name))
	}
	nm, err := NewModel(jm.States, jm.Symbols,
		fromNested(jm.Transitions), fromNested(jm.Emissions), options...)
	if err != nil {
		return err
	}
	*m = *nm
	return nil
}

// ReadFile reads a JSON-encoded model from a file.
func ReadFile(fn string, options ...Option) (*Model, error) {

	m := new(Model)
	if err := dhmm.ReadJSONFile(fn, m); err != nil {
		return nil, err
	}
	for _, option := range options {
		option(m)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	glog.Infof("Read model \"%s\" from file %s.", m.name, fn)
	return m, nil
}

// WriteFile writes the model to a file using JSON encoding.
func (m *Model) WriteFile(fn string) error {

	if err := dhmm.WriteJSONFile(fn, m); err != nil {
		return err
	}
	glog.Infof("Wrote model \"%s\" to file %s.", m.name, fn)
	return nil
}
