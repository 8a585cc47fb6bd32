//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the round
// constant derivation.
package env

import (
	"crypto/rand"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config defines the global configuration. Config must not be
// modified after being passed to any module.
type Config struct {
	Rand   io.Reader
	Output io.Writer
	Log    *logrus.Logger
}

// GetRandom returns the source of entropy for sampling message words.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetOutput returns the writer for results.
func (config *Config) GetOutput() io.Writer {
	if config != nil && config.Output != nil {
		return config.Output
	}
	return os.Stdout
}

// GetLog returns the logger for diagnostics.
func (config *Config) GetLog() *logrus.Logger {
	if config != nil && config.Log != nil {
		return config.Log
	}
	return logrus.StandardLogger()
}
