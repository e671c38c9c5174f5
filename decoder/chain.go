// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// Chain tries Commands in order and stops at the first one that runs.
type Chain struct {
	Commands []Command
	Runner   Runner
	Logger   *slog.Logger
}

// NewChain builds a chain over DefaultCommands using an ExecRunner on $PATH.
func NewChain(logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Chain{
		Commands: DefaultCommands(),
		Runner:   NewExecRunner(),
		Logger:   logger,
	}
}

// OutputPath is in with its extension replaced by ".wav".
func OutputPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".wav"
}

// Decode converts in to a WAV file at out (OutputPath(in) when out is
// empty) and returns the path written.
//
// Only commands supporting the input extension are tried. A command whose
// executable is missing is skipped; a command that runs and fails ends the
// search with *Error. When every candidate is missing the result wraps
// ErrNoDecoder.
func (c *Chain) Decode(in, out string) (string, error) {
	if out == "" {
		out = OutputPath(in)
	}

	ext := strings.ToLower(filepath.Ext(in))

	for _, cmd := range c.Commands {
		if !cmd.Supports(ext) {
			continue
		}

		argv := cmd.Argv(in, out)
		start := time.Now()
		c.Logger.Debug("trying decoder", "decoder", cmd.Name, "input", in)

		err := c.Runner.Run(cmd.Name, argv[1:]...)
		if err == nil {
			c.Logger.Info("decoded", "ext", ext, "command", strings.Join(argv, " "), "duration", time.Since(start))
			return out, nil
		}

		if errors.Is(err, ErrNotFound) {
			c.Logger.Debug("decoder not available", "decoder", cmd.Name, "error", err)
			continue
		}

		return "", &Error{Msg: "problem appeared during decoding", Command: argv, Err: err}
	}

	return "", noDecoder(ext, Names(c.Commands))
}

// Resample converts in to rate Hz with ffmpeg, writing out.
func (c *Chain) Resample(in, out string, rate int) error {
	cmd := FFmpegResample(rate)
	argv := cmd.Argv(in, out)

	c.Logger.Info("resampling", "input", in, "rate", rate)

	err := c.Runner.Run(cmd.Name, argv[1:]...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return &Error{Msg: "decoder not found, please install " + cmd.Name, Command: argv, Err: err}
	default:
		return &Error{Msg: "problem appeared during resampling", Command: argv, Err: err}
	}
}
