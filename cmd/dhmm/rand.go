// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/golang/glog"
)

func randAction() {

	requiredStringParam("model", randModel, &config.ModelIn)
	m, e := hmm.ReadFile(config.ModelIn)
	dhmm.Fatal(e)

	seed := *randSeed
	if seed == 0 {
		seed = config.HMM.GeneratorSeed
	}
	length := *randLength
	if length <= 0 {
		length = config.HMM.GeneratorMaxLen
	}
	if length <= 0 {
		dhmm.Fatal(fmt.Errorf("missing required parameter [length]"))
	}

	w, e := createOutput(*randOut)
	dhmm.Fatal(e)
	defer w.Close()
	dhmm.Fatal(generateSequences(m, hmm.NewRand(seed), length, *randCount, w))
}

// generateSequences writes count JSON sequences of the given length.
// Hidden states are written as labels.
func generateSequences(s model.Sampler, r *rand.Rand, length, count int, w io.Writer) error {

	enc := json.NewEncoder(w)
	for i := 0; i < count; i++ {
		states, symbols := s.Generate(r, length)
		seq := model.Seq{
			ID:      fmt.Sprintf("rand-%d", i),
			Symbols: symbols,
			Labels:  states,
		}
		if e := enc.Encode(seq); e != nil {
			return e
		}
	}
	glog.V(1).Infof("generated %d sequences of length %d", count, length)
	return nil
}
