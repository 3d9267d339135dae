// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/golang/glog"
)

func scoreAction() {

	requiredStringParam("model", scoreModel, &config.ModelIn)
	requiredStringParam("data", scoreData, &config.DataSet)

	m, e := hmm.ReadFile(config.ModelIn, hmm.Workers(workerCount()))
	dhmm.Fatal(e)
	f, e := os.Open(config.DataSet)
	dhmm.Fatal(e)

	dhmm.Fatal(scoreSequences(m, f, os.Stdout))
}

// scoreSequences writes the id and natural log-likelihood of each
// sequence, separated by a tab.
func scoreSequences(sc model.Scorer, r io.Reader, w io.Writer) error {

	obs, _ := model.NewSeqObserver(r)
	defer obs.Close()
	c, _ := obs.ObsChan()

	for seq := range c {
		lik, e := sc.Likelihood(seq.Observations())
		if e != nil {
			glog.Errorf("skipping sequence [%s]: %v", seq.ID, e)
			continue
		}
		if _, e := fmt.Fprintf(w, "%s\t%.6f\n", seq.ID, math.Log(lik)); e != nil {
			return e
		}
	}
	return obs.Err()
}
