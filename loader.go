// SPDX-License-Identifier: EPL-2.0

package audread

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audread/audio"
	"github.com/ik5/audread/decoder"
	"github.com/ik5/audread/formats/wav"
	"github.com/ik5/audread/internal/tempfile"
)

// Loader reads audio files into memory, running external decoders for
// anything that is not already WAV. A Loader only holds configuration and
// may be shared between goroutines; every call owns its temp files.
type Loader struct {
	logger   *slog.Logger
	runner   decoder.Runner
	commands []decoder.Command
	tempDir  string
	native   bool
	registry *audio.Registry
}

// New returns a Loader using the default decoder list on $PATH.
func New(opts ...Option) *Loader {
	l := &Loader{
		logger:   slog.New(slog.DiscardHandler),
		commands: decoder.DefaultCommands(),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.runner == nil {
		l.runner = decoder.NewExecRunner()
	}

	if l.native {
		l.registry = nativeRegistry()
	}

	return l
}

func (l *Loader) chain() *decoder.Chain {
	return &decoder.Chain{
		Commands: l.commands,
		Runner:   l.runner,
		Logger:   l.logger,
	}
}

// standardRates are left alone by auto-resampling.
var standardRates = map[int]bool{11025: true, 22050: true, 44100: true}

// ResampleTarget is the rate a non-standard rate is converted to: 44100 Hz
// from 22050 Hz and above, 22050 Hz below.
func ResampleTarget(rate int) int {
	if rate < 22050 {
		return 22050
	}
	return 44100
}

// Read loads path into memory. WAV files are parsed directly; other
// formats are decoded to a temporary WAV first, which is removed before
// Read returns.
func (l *Loader) Read(path string, opts ReadOptions) (*audio.Stream, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	if isWAV(path) {
		return l.readWAV(path, opts)
	}

	tmp := tempfile.Path(l.tempDir, ".wav")
	defer l.cleanup(tmp)

	if _, err := l.Decode(path, tmp); err != nil {
		return nil, err
	}

	return l.readWAV(tmp, opts)
}

func (l *Loader) readWAV(path string, opts ReadOptions) (*audio.Stream, error) {
	s, err := wav.ParseFile(path)
	if err != nil {
		return nil, err
	}

	if opts.AutoResample && !standardRates[s.SampleRate] {
		l.logger.Info("non-standard sample rate",
			"rate", s.SampleRate, "channels", s.Channels, "samples", s.Frames())

		s, err = l.readResampled(path, ResampleTarget(s.SampleRate))
		if err != nil {
			return nil, err
		}
	}

	if opts.Normalize {
		s.Normalize()
	}

	return s, nil
}

func (l *Loader) readResampled(path string, rate int) (*audio.Stream, error) {
	tmp, err := l.Resample(path, rate)
	if err != nil {
		return nil, err
	}
	defer l.cleanup(tmp)

	return wav.ParseFile(tmp)
}

// Resample writes a copy of the WAV file at path converted to rate Hz into
// a new temp file and returns its path. The caller owns the file.
func (l *Loader) Resample(path string, rate int) (string, error) {
	tmp := tempfile.Path(l.tempDir, ".wav")

	err := l.chain().Resample(path, tmp, rate)
	if err != nil && l.native && errors.Is(err, decoder.ErrNotFound) {
		l.logger.Debug("resampling in-process", "input", path, "rate", rate)
		err = l.nativeResample(path, tmp, rate)
	}

	if err != nil {
		l.cleanup(tmp)
		return "", err
	}

	return tmp, nil
}

// Decode converts in to a WAV file at out and returns the path written. An
// empty out means in with its extension replaced by ".wav".
func (l *Loader) Decode(in, out string) (string, error) {
	if err := checkExists(in); err != nil {
		return "", err
	}

	if out == "" {
		out = decoder.OutputPath(in)
	}

	written, err := l.chain().Decode(in, out)
	if err != nil && l.native && errors.Is(err, decoder.ErrNoDecoder) {
		nerr := l.nativeDecode(in, out)
		if nerr == nil {
			return out, nil
		}
		if !errors.Is(nerr, errUnsupportedNative) {
			return "", nerr
		}
	}

	return written, err
}

// ConvertToWav replaces a non-WAV file with a sibling ".wav" file and
// returns the new path. WAV input is returned untouched.
//
// A decoder that runs and fails is not fatal: the partial output is
// removed, the failure is logged and the original path comes back with a
// nil error. The source file is only deleted after a successful decode.
func (l *Loader) ConvertToWav(path string) (string, error) {
	if err := checkExists(path); err != nil {
		return path, err
	}

	if isWAV(path) {
		l.logger.Debug("already a wav file, no conversion needed", "path", path)
		return path, nil
	}

	out := decoder.OutputPath(path)

	if _, err := l.Decode(path, out); err != nil {
		// out is only ours once a decoder has run; a sibling WAV may
		// already exist when none could be launched.
		var decErr *decoder.Error
		if errors.As(err, &decErr) {
			l.cleanup(out)
			l.logger.Error("error decoding file", "path", path, "error", err)
			return path, nil
		}
		return path, err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return out, fmt.Errorf("removing %s after conversion: %w", path, err)
	}

	return out, nil
}

func (l *Loader) cleanup(path string) {
	if err := tempfile.Remove(path); err != nil {
		l.logger.Warn("could not remove temp file", "path", path, "error", err)
	}
}

func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w", err)
	}
	return nil
}

func isWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}
