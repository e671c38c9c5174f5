// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCommands_Order(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"ffmpeg", "mpg123", "lame"}, Names(DefaultCommands()))
}

func TestDefaultCommands_Argv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  Command
		want []string
	}{
		{FFmpeg(), []string{"ffmpeg", "-v", "1", "-y", "-i", "in.mp3", "out.wav"}},
		{MPG123(), []string{"mpg123", "-q", "-w", "out.wav", "in.mp3"}},
		{Lame(), []string{"lame", "--quiet", "--decode", "in.mp3", "out.wav"}},
		{FFmpegResample(22050), []string{"ffmpeg", "-v", "1", "-y", "-i", "in.mp3", "-ar", "22050", "out.wav"}},
	}

	for _, tt := range tests {
		t.Run(tt.want[0], func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.cmd.Argv("in.mp3", "out.wav"))
		})
	}
}

func TestCommand_Supports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  Command
		ext  string
		want bool
	}{
		{FFmpeg(), ".mp3", true},
		{FFmpeg(), ".MP3", true},
		{FFmpeg(), ".aif", true},
		{FFmpeg(), ".aiff", true},
		{FFmpeg(), ".m4a", true},
		{FFmpeg(), ".ogg", false},
		{FFmpeg(), ".wav", false},
		{MPG123(), ".mp3", true},
		{MPG123(), ".m4a", false},
		{Lame(), ".mp3", true},
		{Lame(), ".aiff", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.cmd.Supports(tt.ext), "%s supports %s", tt.cmd.Name, tt.ext)
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "music/track.wav", OutputPath("music/track.mp3"))
	require.Equal(t, "take.wav", OutputPath("take.AIFF"))
	require.Equal(t, "noext.wav", OutputPath("noext"))
}
