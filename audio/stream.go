// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Stream holds a fully decoded PCM signal in memory.
//
// Samples is frame-major: Samples[i][c] is channel c of frame i. Values are
// signed integers at the declared SampleWidth. Float is nil until Normalize
// is called.
type Stream struct {
	SampleRate  int
	SampleWidth int
	Channels    int
	Samples     [][]int
	Float       [][]float64
}

// NewStream validates the metadata and frame shape before wrapping samples.
func NewStream(sampleRate, sampleWidth, channels int, samples [][]int) (*Stream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: must be positive", sampleRate)
	}

	if sampleWidth < 1 || sampleWidth > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleWidth, sampleWidth)
	}

	if channels <= 0 {
		return nil, fmt.Errorf("channel count %d: must be positive", channels)
	}

	for i, frame := range samples {
		if len(frame) != channels {
			return nil, fmt.Errorf("%w: frame %d has %d values, want %d", ErrRaggedFrame, i, len(frame), channels)
		}
	}

	return &Stream{
		SampleRate:  sampleRate,
		SampleWidth: sampleWidth,
		Channels:    channels,
		Samples:     samples,
	}, nil
}

// Frames returns the number of sample frames (rows).
func (s *Stream) Frames() int { return len(s.Samples) }

// Duration is the playback length at SampleRate.
func (s *Stream) Duration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(s.Samples)) * time.Second / time.Duration(s.SampleRate)
}

// Divisor is the value integer samples are divided by during normalization:
// 2^(8*SampleWidth-1).
func (s *Stream) Divisor() float64 {
	return float64(int64(1) << (8*s.SampleWidth - 1))
}

// Normalize fills Float with every sample divided by Divisor. Only the most
// negative representable value reaches -1 exactly; everything else lies
// strictly inside (-1, 1).
func (s *Stream) Normalize() [][]float64 {
	div := s.Divisor()

	out := make([][]float64, len(s.Samples))
	flat := make([]float64, len(s.Samples)*s.Channels)
	for i, frame := range s.Samples {
		row := flat[i*s.Channels : (i+1)*s.Channels : (i+1)*s.Channels]
		for c, v := range frame {
			row[c] = float64(v) / div
		}
		out[i] = row
	}

	s.Float = out
	return out
}

// Channel copies channel c out of the frame matrix.
func (s *Stream) Channel(c int) []int {
	if c < 0 || c >= s.Channels {
		return nil
	}

	out := make([]int, len(s.Samples))
	for i, frame := range s.Samples {
		out[i] = frame[c]
	}
	return out
}

// Interleaved flattens the frame matrix into channel-interleaved order.
func (s *Stream) Interleaved() []int {
	out := make([]int, 0, len(s.Samples)*s.Channels)
	for _, frame := range s.Samples {
		out = append(out, frame...)
	}
	return out
}

func (s *Stream) String() string {
	return fmt.Sprintf("%d Hz, %d bit, %d channel(s), %d samples",
		s.SampleRate, s.SampleWidth*8, s.Channels, len(s.Samples))
}
