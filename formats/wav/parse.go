// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audread/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// header validates a WAV stream and returns the go-audio decoder with its
// format fields populated.
func header(rs io.ReadSeeker) (*gowav.Decoder, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag 0x%04x", ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedSampleWidth, dec.BitDepth)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return dec, nil
}

// Parse reads a complete PCM WAV stream into memory. 8-bit data, which WAV
// stores unsigned, is re-centred so every width comes back signed.
func Parse(rs io.ReadSeeker) (*audio.Stream, error) {
	dec, err := header(rs)
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	width := int(dec.BitDepth) / 8

	data := buf.Data
	frames := len(data) / channels
	samples := make([][]int, frames)
	for i := range frames {
		row := data[i*channels : (i+1)*channels : (i+1)*channels]
		if width == 1 {
			for c := range row {
				row[c] -= 128
			}
		}
		samples[i] = row
	}

	return audio.NewStream(int(dec.SampleRate), width, channels, samples)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*audio.Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
