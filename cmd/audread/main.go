// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ik5/audread"
	"github.com/ik5/audread/internal/cli"
)

// version is set via ldflags at build time
var version = "dev"

type Globals struct {
	Verbose bool             `short:"v" help:"Log decoder activity to stderr."`
	Path    []string         `placeholder:"DIR" help:"Directories to search for decoder programs (default: $PATH)."`
	TempDir string           `placeholder:"DIR" help:"Directory for intermediate WAV files."`
	Native  bool             `help:"Fall back to in-process decoders when no program is found."`
	Version kong.VersionFlag `help:"Show version information."`
}

var stdout io.Writer = os.Stdout

func (g *Globals) loader() *audread.Loader {
	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}

	opts := []audread.Option{
		audread.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
		audread.WithTempDir(g.TempDir),
		audread.WithNativeFallback(g.Native),
	}
	if len(g.Path) > 0 {
		opts = append(opts, audread.WithSearchPath(g.Path...))
	}

	return audread.New(opts...)
}

type readCmd struct {
	File        string `arg:"" help:"Audio file to read (wav, mp3, aif, aiff, m4a)."`
	NoNormalize bool   `help:"Keep raw integer samples."`
	NoResample  bool   `help:"Keep non-standard sample rates."`
}

func (c *readCmd) Run(g *Globals) error {
	start := time.Now()

	s, err := g.loader().Read(c.File, audread.ReadOptions{
		Normalize:    !c.NoNormalize,
		AutoResample: !c.NoResample,
	})
	if err != nil {
		return err
	}

	cli.PrintTitle(stdout, c.File)
	cli.PrintInfo(stdout, "Rate", fmt.Sprintf("%d Hz", s.SampleRate))
	cli.PrintInfo(stdout, "Width", fmt.Sprintf("%d bit", s.SampleWidth*8))
	cli.PrintInfo(stdout, "Channels", fmt.Sprintf("%d", s.Channels))
	cli.PrintInfo(stdout, "Samples", fmt.Sprintf("%d", s.Frames()))
	cli.PrintInfo(stdout, "Duration", s.Duration().Round(time.Millisecond).String())
	cli.PrintInfo(stdout, "Normalized", fmt.Sprintf("%t", s.Float != nil))
	cli.PrintInfo(stdout, "Took", time.Since(start).Round(time.Millisecond).String())

	return nil
}

type decodeCmd struct {
	Input  string `arg:"" help:"Audio file to decode."`
	Output string `arg:"" optional:"" help:"WAV file to write (default: input with .wav extension)."`
}

func (c *decodeCmd) Run(g *Globals) error {
	out, err := g.loader().Decode(c.Input, c.Output)
	if err != nil {
		return err
	}

	cli.PrintSuccess(stdout, fmt.Sprintf("decoded %s to %s", c.Input, out))
	return nil
}

type convertCmd struct {
	File string `arg:"" help:"Audio file to replace with a WAV file."`
}

func (c *convertCmd) Run(g *Globals) error {
	out, err := g.loader().ConvertToWav(c.File)
	if err != nil {
		return err
	}

	if out == c.File {
		cli.PrintInfo(stdout, "Unchanged", out)
		return nil
	}

	cli.PrintSuccess(stdout, fmt.Sprintf("converted %s to %s", c.File, out))
	return nil
}

type app struct {
	Globals `embed:""`

	Read    readCmd    `cmd:"" help:"Read an audio file and print its properties."`
	Decode  decodeCmd  `cmd:"" help:"Decode an audio file to WAV."`
	Convert convertCmd `cmd:"" help:"Replace an audio file with a WAV file."`
}

func main() {
	var cmd app

	ctx := kong.Parse(&cmd,
		kong.Name("audread"),
		kong.Description("Read WAV, MP3, AIFF and M4A files through external decoders."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cmd.Globals); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
