// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files in-process with github.com/hajimehoshi/go-mp3.
//
// The loader only reaches for it when ffmpeg, mpg123 and lame are all
// missing and the native fallback is enabled.
//
//	f, _ := os.Open("track.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so Channels is 2
// even for mono files.
package mp3
