// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides signal generators and file fixtures for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel c at frame i.
type Waveform func(i, c int) float32

// MockSource is an in-memory audio.Source driven by a Waveform. It does not
// import the audio package so that package's own tests can use it.
type MockSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform
}

// NewMockSource yields frames frames of wave at rate Hz.
func NewMockSource(rate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{rate: rate, channels: channels, frames: frames, wave: wave}
}

func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

// NewSineSource is a full-scale sine at freq Hz on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	step := 2 * math.Pi * freq / float64(rate)
	return NewMockSource(rate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(step * float64(i)))
	})
}

func NewConstantSource(rate, channels, frames int, v float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(int, int) float32 { return v })
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// ReadSamples writes whole frames only and returns io.EOF together with the
// last batch.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}
	if m.channels <= 0 {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		out := dst[f*m.channels : (f+1)*m.channels]
		for c := range out {
			out[c] = m.wave(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
