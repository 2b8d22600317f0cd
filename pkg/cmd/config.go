// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-esolang/pkg/vm/machine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	// MEMORY_BACKEND executes a program held entirely in memory.
	MEMORY_BACKEND = "memory"
	// FILE_BACKEND executes a program in place within its file, such that any
	// writes persist.
	FILE_BACKEND = "file"
)

// Config captures the settings which control how a machine is executed.
// Settings are read from an (optional) TOML file, and any flags given
// explicitly on the command line take precedence.  For example:
//
// backend = "file"
// chunk = 4096
// max-steps = 1000000
// checkpoint = "program.ckpt"
type Config struct {
	// Backend determines which memory backend to use.
	Backend string `toml:"backend"`
	// Chunk is the number of steps executed at a time.
	Chunk uint `toml:"chunk"`
	// MaxSteps bounds the number of steps executed, or zero for no bound.
	MaxSteps uint `toml:"max-steps"`
	// Verbose enables trace logging of every step.
	Verbose bool `toml:"verbose"`
	// Checkpoint is the file to which a checkpoint is written when execution
	// stops, or empty for none.
	Checkpoint string `toml:"checkpoint"`
}

// DefaultConfig returns the settings used in the absence of a configuration
// file or flags.
func DefaultConfig() Config {
	return Config{
		Backend: MEMORY_BACKEND,
		Chunk:   machine.DEFAULT_CHUNK,
	}
}

// LoadConfig reads settings from a TOML file.  Settings missing from the file
// retain their default values.
func LoadConfig(filename string) (Config, error) {
	var config = DefaultConfig()
	//
	data, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	//
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse error in %s: %w", filename, err)
	}
	//
	return config, config.Validate()
}

// Validate checks these settings are sensible.
func (p *Config) Validate() error {
	switch {
	case p.Backend != MEMORY_BACKEND && p.Backend != FILE_BACKEND:
		return fmt.Errorf("unknown backend \"%s\"", p.Backend)
	case p.Chunk == 0:
		return fmt.Errorf("chunk size must be positive")
	}
	//
	return nil
}

// Override any settings for which a flag was given explicitly on the command
// line.
func (p *Config) Override(cmd *cobra.Command) {
	var flags = cmd.Flags()
	//
	if flags.Changed("backend") {
		p.Backend = GetString(cmd, "backend")
	}
	//
	if flags.Changed("chunk") {
		p.Chunk = GetUint(cmd, "chunk")
	}
	//
	if flags.Changed("max-steps") {
		p.MaxSteps = GetUint(cmd, "max-steps")
	}
	//
	if flags.Changed("verbose") {
		p.Verbose = GetFlag(cmd, "verbose")
	}
	//
	if flags.Changed("checkpoint") {
		p.Checkpoint = GetString(cmd, "checkpoint")
	}
}

// configure determines the settings for a given command, by combining the
// configuration file (if given) with any flags.  Logging is also configured
// accordingly.
func configure(cmd *cobra.Command) Config {
	var (
		config   = DefaultConfig()
		filename = GetString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		if config, err = LoadConfig(filename); err != nil {
			exit(EXIT_USAGE, err)
		}
	}
	//
	config.Override(cmd)
	//
	if err := config.Validate(); err != nil {
		exit(EXIT_USAGE, err)
	}
	//
	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	log.Debugf("using %s backend, chunk size %d, step bound %d", config.Backend, config.Chunk, config.MaxSteps)
	//
	return config
}

// addExecutionFlags adds the flags which control execution to a given command.
func addExecutionFlags(cmd *cobra.Command) {
	cmd.Flags().Uint("chunk", machine.DEFAULT_CHUNK, "number of steps to execute at a time")
	cmd.Flags().Uint("max-steps", 0, "maximum number of steps to execute (0 for no limit)")
	cmd.Flags().String("checkpoint", "", "write a checkpoint to this file when execution stops")
	cmd.Flags().StringP("output", "o", "", "write final memory contents to this file")
}
