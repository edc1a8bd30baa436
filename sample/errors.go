// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	// ErrConstruction reports an unsupported width, channel count or rate at load
	// or raw construction time.
	ErrConstruction = errors.New("unsupported sample format")
	// ErrLocked reports a mutation attempt on a locked sample.
	ErrLocked = errors.New("sample is locked")
	// ErrMismatch reports an operation between two samples whose width, rate or
	// channel count differ.
	ErrMismatch = errors.New("sample formats differ")
	// ErrUnsupported reports a request the current configuration cannot serve.
	ErrUnsupported = errors.New("operation not supported")
	// ErrRange reports a channel count outside the supported remix range.
	ErrRange = errors.New("channel count out of range")
	// ErrArgument reports an invalid duration, factor or channel selector.
	ErrArgument = errors.New("invalid argument")
	// ErrModulatorExhausted reports a one-shot modulator that ran out of values.
	ErrModulatorExhausted = errors.New("modulator exhausted")
)
