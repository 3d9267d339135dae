// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akualab/dhmm"
	"github.com/golang/glog"
)

// errNoValue is returned when neither a flag nor the config set a parameter.
var errNoValue = fmt.Errorf("no value in flag or config file")

// stringParam copies a non-empty flag value into the config field.
func stringParam(name string, flagVal *string, field *string) error {
	if len(*flagVal) > 0 {
		*field = *flagVal
	}
	if len(*field) == 0 {
		return errNoValue
	}
	glog.V(1).Infof("param %s: %s", name, *field)
	return nil
}

func requiredStringParam(name string, flagVal *string, field *string) {
	if stringParam(name, flagVal, field) != nil {
		dhmm.Fatal(fmt.Errorf("missing required parameter [%s]", name))
	}
}

// workspacePath places relative output paths under the workspace dir.
func workspacePath(fn string) string {
	if len(props.Workspace) == 0 || filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(props.Workspace, fn)
}

// createOutput opens an output file or returns stdout when fn is empty.
func createOutput(fn string) (io.WriteCloser, error) {
	if len(fn) == 0 {
		glog.Infof("no output file specified, writing to stdout")
		return nopCloser{os.Stdout}, nil
	}
	fn = workspacePath(fn)
	if e := os.MkdirAll(filepath.Dir(fn), 0755); e != nil {
		return nil, e
	}
	return os.Create(fn)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func workerCount() int {
	if config.HMM.Workers > 0 && *workers == 1 {
		return config.HMM.Workers
	}
	return *workers
}
