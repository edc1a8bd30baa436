// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files into samples using github.com/mewkiz/flac.
//
// 16, 24 and 32 bit streams keep their width. A 20-bit stream becomes a
// 24-bit sample, shifted so full scale stays full scale.
package flac
