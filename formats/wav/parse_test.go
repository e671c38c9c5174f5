// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audread/internal/audiotest"
	"github.com/stretchr/testify/require"
)

func TestParse_Stereo16(t *testing.T) {
	t.Parallel()

	frames := [][]int{{0, 1}, {100, -100}, {32767, -32768}, {-5, 5}}
	path := filepath.Join(t.TempDir(), "stereo.wav")
	audiotest.WriteWAV(t, path, 44100, 16, frames)

	s, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 44100, s.SampleRate)
	require.Equal(t, 2, s.SampleWidth)
	require.Equal(t, 2, s.Channels)
	require.Equal(t, frames, s.Samples)
}

func TestParse_Widths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		in       []int
		want     []int
	}{
		{"24-bit", 24, []int{0, 8388607, -8388608, -1}, []int{0, 8388607, -8388608, -1}},
		{"32-bit", 32, []int{0, 2147483647, -2147483648, 12345}, []int{0, 2147483647, -2147483648, 12345}},
		// 8-bit WAV is unsigned on disk, 128 is silence
		{"8-bit", 8, []int{128, 255, 0, 129}, []int{0, 127, -128, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frames := make([][]int, len(tt.in))
			for i, v := range tt.in {
				frames[i] = []int{v}
			}

			path := filepath.Join(t.TempDir(), "mono.wav")
			audiotest.WriteWAV(t, path, 8000, tt.bitDepth, frames)

			s, err := ParseFile(path)
			require.NoError(t, err)
			require.Equal(t, tt.bitDepth/8, s.SampleWidth)
			require.Equal(t, 1, s.Channels)
			require.Equal(t, tt.want, s.Channel(0))
		})
	}
}

func TestParse_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Parse(bytes.NewReader([]byte("NOT A WAV FILE DATA AT ALL, JUST TEXT")))
	require.ErrorIs(t, err, ErrNotWavFile)
}

func TestParse_FloatFormatRejected(t *testing.T) {
	t.Parallel()

	// 32-bit IEEE float, format tag 3
	buf := new(bytes.Buffer)
	data := make([]byte, 16)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(3))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(8000))
	binary.Write(buf, binary.LittleEndian, uint32(32000))
	binary.Write(buf, binary.LittleEndian, uint16(4))
	binary.Write(buf, binary.LittleEndian, uint16(32))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	_, err := Parse(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupportedWavLayout) || errors.Is(err, ErrNotWavFile), "got %v", err)
}

func TestParseFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.wav"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
