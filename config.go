// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the parameters of a decoding or training run.
type Config struct {
	ModelIn     string `yaml:"model_in,omitempty" json:"model_in,omitempty"`
	ModelOut    string `yaml:"model_out,omitempty" json:"model_out,omitempty"`
	Problem     string `yaml:"problem,omitempty" json:"problem,omitempty"`
	DataSet     string `yaml:"data_set,omitempty" json:"data_set,omitempty"`
	ResultsFile string `yaml:"results_file,omitempty" json:"results_file,omitempty"`

	HMM HMM `yaml:"hmm" json:"hmm"`
}

// HMM holds the training and generation parameters.
type HMM struct {
	Iterations      int   `yaml:"iterations,omitempty" json:"iterations,omitempty"`
	UpdateTP        *bool `yaml:"update_tp,omitempty" json:"update_tp,omitempty"`
	UpdateEP        *bool `yaml:"update_ep,omitempty" json:"update_ep,omitempty"`
	Workers         int   `yaml:"workers,omitempty" json:"workers,omitempty"`
	GeneratorSeed   int64 `yaml:"generator_seed,omitempty" json:"generator_seed,omitempty"`
	GeneratorMaxLen int   `yaml:"generator_max_length,omitempty" json:"generator_max_length,omitempty"`
}

// UpdateTransitions reports whether training must re-estimate transition
// probabilities. Defaults to true.
func (h HMM) UpdateTransitions() bool {
	return h.UpdateTP == nil || *h.UpdateTP
}

// UpdateEmissions reports whether training must re-estimate emission
// probabilities. Defaults to true.
func (h HMM) UpdateEmissions() bool {
	return h.UpdateEP == nil || *h.UpdateEP
}

// ReadConfig reads a YAML config file.
func ReadConfig(fn string) (*Config, error) {

	f, e := os.Open(fn)
	if e != nil {
		return nil, e
	}
	defer f.Close()
	return ReadConfigReader(f)
}

// ReadConfigReader reads a YAML config from an io.Reader.
func ReadConfigReader(r io.Reader) (*Config, error) {

	b, e := ioutil.ReadAll(r)
	if e != nil {
		return nil, e
	}
	config := new(Config)
	e = yaml.Unmarshal(b, config)
	if e != nil {
		return nil, e
	}
	return config, nil
}
