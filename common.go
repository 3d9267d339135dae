// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// Result is a decoding result for one observation sequence.
type Result struct {
	BatchID    string   `json:"batchid"`
	Ref        []string `json:"ref,omitempty"`
	Hyp        []string `json:"hyp"`
	Prob       float64  `json:"prob"`
	Likelihood float64  `json:"likelihood,omitempty"`

	// Fraction of positions where Hyp matches Ref. Only set when Ref is known.
	Accuracy float64 `json:"accuracy,omitempty"`
}

// Fatal logs err and exits if err is not nil.
func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}

// WriteJSONFile writes v to file fn using JSON encoding. Creates the
// directory if needed.
func WriteJSONFile(fn string, v interface{}) error {

	e := os.MkdirAll(filepath.Dir(fn), 0755)
	if e != nil {
		return e
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	return enc.Encode(v)
}

// ReadJSONFile reads a JSON-encoded value from file fn into v.
func ReadJSONFile(fn string, v interface{}) error {

	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(v)
}
