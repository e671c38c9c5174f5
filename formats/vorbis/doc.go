// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// None of the external decoders is configured for ".ogg", so Vorbis input
// is only readable when the loader's native fallback is enabled.
//
//	f, _ := os.Open("clip.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
