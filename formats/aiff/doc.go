// SPDX-License-Identifier: EPL-2.0

// Package aiff reads AIFF files into audio sources using go-audio/aiff.
//
// Samples must be signed PCM of 16, 24 or 32 bits; any channel count and
// rate are accepted. A reader that cannot seek is buffered in memory first.
//
//	f, _ := os.Open("chime.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
package aiff
