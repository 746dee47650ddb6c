// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads Ogg Vorbis streams into audio sources using
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//
// Reads are trimmed to whole frames, so a buffer shorter than one frame
// yields nothing.
package vorbis
