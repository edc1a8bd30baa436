// SPDX-License-Identifier: EPL-2.0

// Package log hands out the logrus loggers used across the module.
package log

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv turns on debug output when it parses as true.
const DebugEnv = "SAMPLEBOX_DEBUG"

var debug bool

// Logger is what components accept, so callers can pass a *logrus.Logger or a
// *logrus.Entry carrying fields.
type Logger = logrus.FieldLogger

func init() {
	debug = enabled(os.Getenv(DebugEnv))
}

func enabled(v string) bool {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}

	return on
}

// GetLogger returns a new logger instance
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
