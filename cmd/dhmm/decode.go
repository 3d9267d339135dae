// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/akualab/dhmm/rosalind"
	"github.com/golang/glog"
	"github.com/google/uuid"
)

func decodeAction() {

	// Command flags overwrite config file params.
	if stringParam("problem", decodeProblem, &config.Problem) == nil {
		decodeProblemFile(config.Problem, os.Stdout)
		return
	}
	requiredStringParam("model", decodeModel, &config.ModelIn)
	requiredStringParam("data", decodeData, &config.DataSet)
	stringParam("results", decodeResults, &config.ResultsFile)

	m, e := hmm.ReadFile(config.ModelIn, hmm.Workers(workerCount()))
	dhmm.Fatal(e)
	glog.V(4).Infof("HMM passed to decoder:\n%s", m)

	f, e := os.Open(config.DataSet)
	dhmm.Fatal(e)
	w, e := createOutput(config.ResultsFile)
	dhmm.Fatal(e)
	defer w.Close()

	dhmm.Fatal(decodeSequences(m, f, w))
}

func decodeProblemFile(fn string, w io.Writer) {

	f, e := os.Open(fn)
	dhmm.Fatal(e)
	defer f.Close()
	p, e := rosalind.ReadDecodeProblem(f)
	dhmm.Fatal(e)

	m, e := p.Model(hmm.Name(filepath.Base(fn)), hmm.Workers(workerCount()))
	dhmm.Fatal(e)
	path, prob, e := m.Viterbi(p.Sequence)
	dhmm.Fatal(e)
	glog.Infof("decoded %d symbols, P(path, O|Φ) = %e", len(path), prob)
	dhmm.Fatal(rosalind.WritePath(w, path))
}

// decodeSequences writes one JSON result per sequence read from r.
// Sequences that cannot be decoded are logged and skipped.
func decodeSequences(m model.Modeler, r io.Reader, w io.Writer) error {

	obs, _ := model.NewSeqObserver(r)
	defer obs.Close()
	c, _ := obs.ObsChan()

	enc := json.NewEncoder(w)
	glog.Infof("Starting decoder with model [%s], %d states.", m.Name(), m.NumStates())
	var n, skipped, matches, total int
	for seq := range c {
		id := seq.ID
		if len(id) == 0 {
			id = uuid.New().String()
		}
		symbols := seq.Observations()
		hyp, prob, e := m.Viterbi(symbols)
		if e != nil {
			glog.Errorf("skipping sequence [%s]: %v", id, e)
			skipped++
			continue
		}
		lik, e := m.Likelihood(symbols)
		if e != nil {
			glog.Errorf("skipping sequence [%s]: %v", id, e)
			skipped++
			continue
		}
		res := dhmm.Result{
			BatchID:    id,
			Ref:        seq.Labels,
			Hyp:        hyp,
			Prob:       prob,
			Likelihood: lik,
		}
		if len(seq.Labels) > 0 {
			k, e := model.Matches(seq.Labels, hyp)
			if e != nil {
				glog.Warningf("sequence [%s]: %v", id, e)
			} else {
				res.Accuracy = float64(k) / float64(len(hyp))
				matches += k
				total += len(hyp)
			}
		}
		if glog.V(2) {
			glog.Infof("sequence [%s] hyp: %s", id, model.AlignLabels(hyp))
		}
		if e := enc.Encode(res); e != nil {
			return e
		}
		n++
	}
	if e := obs.Err(); e != nil {
		return fmt.Errorf("reading sequences: %v", e)
	}
	glog.Infof("decoded %d sequences, skipped %d", n, skipped)
	if total > 0 {
		glog.Infof("state accuracy: %.4f (%d/%d)", float64(matches)/float64(total), matches, total)
	}
	return nil
}
