// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Write encodes interleaved 16-bit PCM as a WAV stream. The encoder seeks
// back to patch chunk sizes, so w must also be an io.Seeker.
func Write(w io.Writer, sampleRate, channels int, samples []int16) error {
	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return ErrNoSeeker
	}

	if channels <= 0 || sampleRate <= 0 {
		return fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedWavLayout, sampleRate, channels)
	}

	data := make([]int, len(samples)-len(samples)%channels)
	for i := range data {
		data[i] = int(samples[i])
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV header: %w", err)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return Write(w, sampleRate, 1, samples)
}

// WriteFile creates (or truncates) path and writes samples to it. A partial
// file is removed when encoding fails.
func WriteFile(path string, sampleRate, channels int, samples []int16) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return Write(f, sampleRate, channels, samples)
}
