// SPDX-License-Identifier: EPL-2.0

// Package decoder turns compressed audio into WAV files by running external
// programs.
//
// A Command pairs an executable with its argument template and the input
// extensions it handles. DefaultCommands returns the fixed priority list:
//
//	ffmpeg -v 1 -y -i <in> <out>        .mp3 .aif .aiff .m4a
//	mpg123 -q -w <out> <in>             .mp3
//	lame --quiet --decode <in> <out>    .mp3
//
// Chain walks that list. A program that cannot be found is skipped; a
// program that starts and exits nonzero stops the walk with *Error. If
// nothing could be launched the error wraps ErrNoDecoder and names every
// configured program.
//
//	chain := decoder.NewChain(logger)
//	out, err := chain.Decode("track.mp3", "")
//	var derr *decoder.Error
//	switch {
//	case errors.As(err, &derr):
//	    log.Println(derr.Command, derr.Err)
//	case errors.Is(err, decoder.ErrNoDecoder):
//	    // install ffmpeg
//	}
//
// Executables are resolved by ExecRunner against an explicit SearchPath, so
// callers can add tool directories without touching the process
// environment.
package decoder
