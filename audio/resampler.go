// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audread/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. A one-pole low-pass filter is applied when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// window holds four frames for the spline: t-1, t0, t+1, t+2.
	window [4][]float32
	filled [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	srcBuf []float32
	eof    bool // source drained
	done   bool // io.EOF already returned to the caller

	lowPass     bool
	alpha       float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		lowPass:     ratio > 1.0,
		alpha:       0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// readFrame pulls a single frame from the source into dst.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.srcBuf)
	got := n >= r.channels
	if got {
		copy(dst, r.srcBuf[:r.channels])
		if r.lowPass {
			for c := range r.channels {
				dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.filterState[c]
				r.filterState[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("resampler: %w", err)
	}

	if !got {
		// (0, nil) from a drained decoder counts as end of stream.
		r.eof = true
	}
	return got, nil
}

// prime fills the initial window. Missing trailing frames repeat the last
// frame that was read.
func (r *Resampler) prime() error {
	r.primed = true

	for i := range r.window {
		if r.eof {
			break
		}

		if i == 0 && r.lowPass {
			// Seed the filter with the first frame to avoid a warm-up ramp.
			n, err := r.src.ReadSamples(r.srcBuf)
			if n >= r.channels {
				copy(r.filterState, r.srcBuf[:r.channels])
				copy(r.window[0], r.srcBuf[:r.channels])
				r.filled[0] = true
			}
			if err == io.EOF || (err == nil && n < r.channels) {
				r.eof = true
			} else if err != nil {
				return fmt.Errorf("resampler: %w", err)
			}
			continue
		}

		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		r.filled[i] = ok
	}

	if !r.filled[0] {
		return io.EOF
	}

	for i := 1; i < len(r.window); i++ {
		if !r.filled[i] {
			copy(r.window[i], r.window[i-1])
			r.filled[i] = true
		}
	}

	return nil
}

// advance shifts the window by one frame and reads the next one. Once the
// source is drained the window keeps shifting in empty slots, so the tail
// of the signal is still interpolated.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]
	r.filled[3] = false

	if r.eof {
		return nil
	}

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	r.filled[3] = ok

	return nil
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels <= 0 || len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				r.done = true
			}
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			r.done = true
			return written * r.channels, io.EOF
		}

		y3 := r.window[3]
		if !r.filled[3] {
			y3 = r.window[2]
		}

		alpha := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], y3[c], alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
