// SPDX-License-Identifier: EPL-2.0

package audread

import (
	"log/slog"

	"github.com/ik5/audread/decoder"
)

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSearchPath resolves decoder executables in dirs instead of $PATH.
func WithSearchPath(dirs ...string) Option {
	return func(l *Loader) {
		l.runner = decoder.NewExecRunner(dirs...)
	}
}

// WithRunner replaces process execution entirely, mostly useful in tests.
func WithRunner(r decoder.Runner) Option {
	return func(l *Loader) {
		if r != nil {
			l.runner = r
		}
	}
}

// WithCommands replaces the decoder priority list.
func WithCommands(cmds ...decoder.Command) Option {
	return func(l *Loader) {
		l.commands = append([]decoder.Command(nil), cmds...)
	}
}

// WithTempDir places intermediate WAV files in dir instead of os.TempDir().
func WithTempDir(dir string) Option {
	return func(l *Loader) {
		l.tempDir = dir
	}
}

// WithNativeFallback enables the in-process decoders and resampler when no
// external program can be launched.
func WithNativeFallback(enabled bool) Option {
	return func(l *Loader) {
		l.native = enabled
	}
}

// ReadOptions controls post-processing in Read.
type ReadOptions struct {
	// Normalize fills Stream.Float with samples scaled to [-1, 1].
	Normalize bool
	// AutoResample converts rates other than 11025, 22050 and 44100 Hz.
	AutoResample bool
}

// DefaultReadOptions enables both normalization and auto-resampling.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Normalize: true, AutoResample: true}
}
