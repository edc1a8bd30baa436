// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into samples using
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to floating point; values are scaled to 16-bit integers,
// with anything outside [-1, 1] clipped.
package vorbis
