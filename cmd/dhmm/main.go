// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dhmm decodes, trains, scores and samples discrete hidden
// Markov models.
package main

import (
	"flag"
	"io/ioutil"
	"os"
	osuser "os/user"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/akualab/dhmm"
	"github.com/golang/glog"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	appName    = "dhmm"
	appVersion = "0.1"
)

var (
	props  *Properties
	logDir *string
	config *dhmm.Config
)

var (
	app         = kingpin.New(appName, "Discrete hidden Markov model command-line tool.")
	configFile  = app.Flag("config", "YAML config file. Command flags overwrite config values.").Short('c').String()
	workers     = app.Flag("workers", "Goroutines per time step.").Default("1").Int()
	logToStderr = app.Flag("log-stderr", "Logs are written to standard error instead of files.").Default("true").Bool()
	vLevel      = app.Flag("log-level", "Enable V-leveled logging at the specified level.").Default("0").Short('v').String()

	decodeCmd     = app.Command("decode", "Finds the most likely state path for each observation sequence.")
	decodeProblem = decodeCmd.Flag("problem", "Rosalind BA10C problem file.").String()
	decodeModel   = decodeCmd.Flag("model", "Input model file (JSON).").String()
	decodeData    = decodeCmd.Flag("data", "Observation sequences (newline-delimited JSON).").String()
	decodeResults = decodeCmd.Flag("results", "Results file. Default is stdout.").String()

	learnCmd        = app.Command("learn", "Estimates model parameters using Baum-Welch.")
	learnProblem    = learnCmd.Flag("problem", "Rosalind BA10K problem file.").String()
	learnModel      = learnCmd.Flag("model", "Input model file (JSON).").String()
	learnSequence   = learnCmd.Flag("sequence", "Observation sequence, used with --model.").String()
	learnIterations = learnCmd.Flag("iterations", "Number of iterations. Overwrites the value in the problem or config file.").Default("-1").Int()
	learnModelOut   = learnCmd.Flag("model-out", "Output model file (JSON).").String()
	learnProgress   = learnCmd.Flag("progress", "Show a progress bar.").Bool()

	scoreCmd   = app.Command("score", "Computes the log-likelihood of each observation sequence.")
	scoreModel = scoreCmd.Flag("model", "Input model file (JSON).").String()
	scoreData  = scoreCmd.Flag("data", "Observation sequences (newline-delimited JSON).").String()

	randCmd    = app.Command("rand", "Generate random sequences using model.")
	randModel  = randCmd.Flag("model", "Input model file (JSON).").String()
	randSeed   = randCmd.Flag("seed", "Seed for random number generator.").Default("0").Int64()
	randLength = randCmd.Flag("length", "Sequence length.").Default("0").Int()
	randCount  = randCmd.Flag("count", "Number of sequences.").Default("1").Int()
	randOut    = randCmd.Flag("out", "Output file. Default is stdout.").String()
)

// Properties of dhmm.
type Properties struct {
	Workspace string `toml:"workspace_dir"`
	LogDir    string `toml:"log_dir"`
}

func init() {
	currDir, e1 := os.Getwd()
	dhmm.Fatal(e1)
	propPath := currDir
	u, e2 := osuser.Current()
	if e2 == nil {
		propPath = filepath.Join(u.HomeDir, ".config", appName)
	}
	propPath = filepath.Join(propPath, "properties.toml")
	propEnvVar := os.Getenv("DHMM_PROPERTIES")
	if len(propEnvVar) > 0 {
		propPath = propEnvVar
	}

	props = new(Properties)
	dat, e3 := ioutil.ReadFile(propPath)
	if e3 == nil {
		_, e4 := toml.Decode(string(dat), props)
		dhmm.Fatal(e4)
	}
	defaultLogDir := filepath.Join(currDir, "log")
	if len(props.LogDir) > 0 {
		defaultLogDir = props.LogDir
	}
	logDir = app.Flag("log", "Log output dir.").Default(defaultLogDir).String()
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	app.Version(appVersion)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	initGlog()
	defer glog.Flush()
	printAppValues()
	checkDir(props.Workspace)
	config = readConfig(*configFile)

	switch cmd {

	case decodeCmd.FullCommand():
		glog.V(3).Info("start decode command")
		decodeAction()

	case learnCmd.FullCommand():
		glog.V(3).Info("start learn command")
		learnAction()

	case scoreCmd.FullCommand():
		glog.V(3).Info("start score command")
		scoreAction()

	case randCmd.FullCommand():
		glog.V(3).Info("start rand command")
		randAction()
	}
}

func readConfig(fn string) *dhmm.Config {
	if len(fn) == 0 {
		return new(dhmm.Config)
	}
	c, e := dhmm.ReadConfig(fn)
	dhmm.Fatal(e)
	glog.V(1).Infof("read config file %s", fn)
	return c
}

// Creates dir if it doesn't exist.
func checkDir(path string) {

	if len(path) == 0 {
		return
	}
	e := os.MkdirAll(path, 0755)
	if e != nil {
		glog.Fatal(e)
	}
}

func initGlog() {

	checkDir(*logDir)
	if *logToStderr {
		flag.Set("alsologtostderr", "true")
	}
	flag.Set("v", *vLevel)
	flag.Set("log_dir", *logDir)
}

func printAppValues() {
	glog.Info("app properties:", *props)
	glog.Info("app version: ", appVersion)
	glog.Info("app log to std err: ", *logToStderr)
	glog.Info("app log level: ", *vLevel)
	glog.Info("app log dir: ", *logDir)
}
