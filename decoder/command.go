// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"slices"
	"strconv"
	"strings"
)

// Command describes one external program that can turn an input file into
// a WAV file.
type Command struct {
	// Name is the executable looked up on the search path.
	Name string
	// Args builds the argument list (without Name) for an input/output pair.
	Args func(in, out string) []string
	// Extensions lists the lower-case input extensions, dot included.
	Extensions []string
}

// Supports reports whether ext (any case, dot included) is handled.
func (c Command) Supports(ext string) bool {
	return slices.Contains(c.Extensions, strings.ToLower(ext))
}

// Argv is the full command line, executable first.
func (c Command) Argv(in, out string) []string {
	return append([]string{c.Name}, c.Args(in, out)...)
}

// FFmpeg decodes anything ffmpeg understands; -y overwrites the output,
// which already exists when it is a reserved temp path.
func FFmpeg() Command {
	return Command{
		Name: "ffmpeg",
		Args: func(in, out string) []string {
			return []string{"-v", "1", "-y", "-i", in, out}
		},
		Extensions: []string{".mp3", ".aif", ".aiff", ".m4a"},
	}
}

func MPG123() Command {
	return Command{
		Name: "mpg123",
		Args: func(in, out string) []string {
			return []string{"-q", "-w", out, in}
		},
		Extensions: []string{".mp3"},
	}
}

func Lame() Command {
	return Command{
		Name: "lame",
		Args: func(in, out string) []string {
			return []string{"--quiet", "--decode", in, out}
		},
		Extensions: []string{".mp3"},
	}
}

// DefaultCommands is the fixed priority list: ffmpeg, mpg123, lame.
func DefaultCommands() []Command {
	return []Command{FFmpeg(), MPG123(), Lame()}
}

// FFmpegResample converts a file to rate Hz.
func FFmpegResample(rate int) Command {
	return Command{
		Name: "ffmpeg",
		Args: func(in, out string) []string {
			return []string{"-v", "1", "-y", "-i", in, "-ar", strconv.Itoa(rate), out}
		},
	}
}

// Names lists the executable names of cmds in order.
func Names(cmds []Command) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}
