// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {

	// Create config yaml file.
	fn := filepath.Join(t.TempDir(), "config.yaml")
	t.Logf("Config File: %s.", fn)
	err := ioutil.WriteFile(fn, []byte(config), 0644)
	CheckError(t, err)

	// Read config.
	config, e := ReadConfig(fn)
	require.NoError(t, e)

	// Check Config content.
	t.Logf("Config: %+v", config)

	assert.Equal(t, "model.json", config.ModelIn)
	assert.Equal(t, "sequences.json", config.DataSet)
	assert.Equal(t, 100, config.HMM.Iterations)
	assert.Equal(t, 4, config.HMM.Workers)
	assert.False(t, config.HMM.UpdateTransitions())
	assert.True(t, config.HMM.UpdateEmissions())
}

func TestConfigDefaults(t *testing.T) {

	config, e := ReadConfigReader(strings.NewReader("model_in: m.json\n"))
	require.NoError(t, e)
	assert.Equal(t, 0, config.HMM.Iterations)
	assert.True(t, config.HMM.UpdateTransitions())
	assert.True(t, config.HMM.UpdateEmissions())
}

func TestConfigBadYAML(t *testing.T) {

	_, e := ReadConfigReader(strings.NewReader("hmm: [unclosed\n"))
	assert.Error(t, e)
}

const config string = `
model_in: model.json
data_set: sequences.json
hmm:
  iterations: 100
  update_tp: false
  workers: 4
`
