// SPDX-License-Identifier: EPL-2.0

// Package audread reads WAV, MP3, AIFF and M4A files into memory.
//
// Decoding is not done here. Anything that is not already WAV is handed to
// the first available external program (ffmpeg, then mpg123, then lame),
// written to a temporary WAV file, parsed with github.com/go-audio/wav and
// deleted again.
//
// # Quick Start
//
//	s, err := audread.Read("track.mp3", audread.DefaultReadOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s) // 44100 Hz, 16 bit, 2 channel(s), 2421504 samples
//	left := s.Channel(0)
//	norm := s.Float // filled because Normalize was set
//
// # Read Options
//
// Normalize divides every sample by 2^(8*width-1) and stores the result in
// Stream.Float. AutoResample converts any rate other than 11025, 22050 or
// 44100 Hz with ffmpeg: to 44100 Hz from 22050 Hz upward, to 22050 Hz below.
//
// # Configuration
//
// A Loader is built with functional options:
//
//	l := audread.New(
//	    audread.WithLogger(slog.Default()),
//	    audread.WithSearchPath("/opt/ffmpeg/bin", "/usr/bin"),
//	    audread.WithTempDir("/var/tmp"),
//	    audread.WithNativeFallback(true),
//	)
//
// The search path is passed to the process runner; the environment of the
// calling process is never modified.
//
// # Errors
//
//   - ErrFileNotFound: the input does not exist. Nothing is run.
//   - *decoder.Error: a decoder started and exited nonzero. Later
//     candidates are not tried.
//   - ErrNoDecoderFound: no candidate could be launched. The message names
//     every configured program.
//
// ConvertToWav treats *decoder.Error as non-fatal: it logs, removes the
// partial output and returns the original path.
//
// # Native Fallback
//
// With WithNativeFallback(true), inputs that no external program could
// handle are decoded in-process (mp3 via go-mp3, aif/aiff via go-audio/aiff,
// ogg via oggvorbis) and resampling falls back to a cubic resampler when
// ffmpeg is missing. It is off by default.
package audread
