// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMReader is the buffer-filling half of the go-audio WAV and AIFF
// decoders.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource turns integer PCM from a go-audio decoder into float samples.
type IntSource struct {
	r        PCMReader
	format   *goaudio.Format
	scale    float32
	offset   int
	bitDepth int
	buf      *goaudio.IntBuffer
}

// NewIntSource wraps r. Samples are shifted down by offset (128 for unsigned
// 8-bit WAV, otherwise 0) and divided by 2^(bitDepth-1).
func NewIntSource(r PCMReader, format *goaudio.Format, bitDepth, offset int) (*IntSource, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidSampleWidth, bitDepth)
	}

	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("int source: invalid format %+v", format)
	}

	return &IntSource{
		r:        r,
		format:   format,
		scale:    float32(int64(1) << (bitDepth - 1)),
		offset:   offset,
		bitDepth: bitDepth,
	}, nil
}

func (s *IntSource) SampleRate() int { return s.format.SampleRate }
func (s *IntSource) Channels() int   { return s.format.NumChannels }
func (s *IntSource) BitDepth() int   { return s.bitDepth }
func (s *IntSource) Close() error    { return nil }

func (s *IntSource) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

// ReadSamples converts up to len(dst) samples. A short read ends the stream.
func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{Format: s.format, Data: make([]int, len(dst))}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-s.offset) / s.scale
	}

	switch {
	case err != nil && err != io.EOF:
		return n, fmt.Errorf("int source: %w", err)
	case err == io.EOF, n < len(dst):
		return n, io.EOF
	}
	return n, nil
}
