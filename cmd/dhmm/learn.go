// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/akualab/dhmm/rosalind"
	"github.com/golang/glog"
	"github.com/schollz/progressbar/v2"
)

func learnAction() {

	var (
		m     *hmm.Model
		obs   []string
		iters = config.HMM.Iterations
		isPrb bool
		e     error
	)

	if stringParam("problem", learnProblem, &config.Problem) == nil {
		isPrb = true
		f, e := os.Open(config.Problem)
		dhmm.Fatal(e)
		p, e := rosalind.ReadLearnProblem(f)
		f.Close()
		dhmm.Fatal(e)
		m, e = p.Model(hmm.Name(filepath.Base(config.Problem)), hmm.Workers(workerCount()))
		dhmm.Fatal(e)
		obs = p.Sequence
		iters = p.Iterations
	} else {
		requiredStringParam("model", learnModel, &config.ModelIn)
		if len(*learnSequence) == 0 {
			dhmm.Fatal(fmt.Errorf("missing required parameter [sequence]"))
		}
		m, e = hmm.ReadFile(config.ModelIn, hmm.Workers(workerCount()))
		dhmm.Fatal(e)
		obs = splitSequence(*learnSequence)
	}
	if *learnIterations >= 0 {
		iters = *learnIterations
	}

	learned, e := train(m, obs, iters, *learnProgress)
	dhmm.Fatal(e)

	if isPrb {
		dhmm.Fatal(rosalind.WriteLearnResult(os.Stdout, learned))
	}
	if stringParam("model-out", learnModelOut, &config.ModelOut) == nil {
		dhmm.Fatal(learned.WriteFile(workspacePath(config.ModelOut)))
	}
}

// splitSequence splits on whitespace when present, otherwise into
// single characters.
func splitSequence(s string) []string {
	if f := strings.Fields(s); len(f) > 1 {
		return f
	}
	return model.Seq{Sequence: strings.TrimSpace(s)}.Observations()
}

func train(m *hmm.Model, obs []string, n int, progress bool) (*hmm.Model, error) {

	options := []hmm.TrainerOption{
		hmm.UpdateTP(config.HMM.UpdateTransitions()),
		hmm.UpdateEP(config.HMM.UpdateEmissions()),
	}
	if progress && n > 0 {
		bar := progressbar.New(n)
		options = append(options, hmm.OnIteration(func(it hmm.Iteration) {
			bar.Add(1)
		}))
	}

	tr := hmm.NewTrainer(options...)
	learned, err := tr.Train(m, obs, n)
	if err != nil {
		return nil, err
	}
	if h := tr.History(); len(h) > 0 {
		glog.Infof("trained %d iterations, P(O|Φ): %e => %e", n, h[0], h[len(h)-1])
	}
	return learned, nil
}
