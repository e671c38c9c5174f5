// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFile_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{1, -1, 200, -200, 32767, -32768, 0, 0}
	path := filepath.Join(t.TempDir(), "out.wav")

	require.NoError(t, WriteFile(path, 22050, 2, samples))

	s, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 22050, s.SampleRate)
	require.Equal(t, 2, s.SampleWidth)
	require.Equal(t, 2, s.Channels)
	require.Equal(t, 4, s.Frames())

	got := s.Interleaved()
	for i, v := range samples {
		require.Equal(t, int(v), got[i], "sample %d", i)
	}
}

func TestWriteWAV16_Mono(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mono.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, WriteWAV16(f, 8000, []int16{10, 20, 30}))
	require.NoError(t, f.Close())

	s, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, s.Channels)
	require.Equal(t, []int{10, 20, 30}, s.Channel(0))
}

func TestWrite_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "odd.wav")
	require.NoError(t, WriteFile(path, 8000, 2, []int16{1, 2, 3, 4, 5}))

	s, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, s.Frames())
}

func TestWrite_NeedsSeeker(t *testing.T) {
	t.Parallel()

	err := Write(new(bytes.Buffer), 8000, 1, []int16{1})
	require.ErrorIs(t, err, ErrNoSeeker)
}

func TestWrite_InvalidLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	err := WriteFile(path, 8000, 0, []int16{1})
	require.ErrorIs(t, err, ErrUnsupportedWavLayout)

	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist, "partial file should be removed")
}
