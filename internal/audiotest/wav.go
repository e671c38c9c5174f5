// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteWAV encodes frames as a PCM WAV file at path. Values are written as
// go-audio expects them: signed for 16/24/32 bits, unsigned for 8 bits.
func WriteWAV(tb testing.TB, path string, sampleRate, bitDepth int, frames [][]int) {
	tb.Helper()

	if err := EncodeWAV(path, sampleRate, bitDepth, frames); err != nil {
		tb.Fatal(err)
	}
}

// EncodeWAV is WriteWAV without a testing.TB, for fixtures produced off the
// test goroutine.
func EncodeWAV(path string, sampleRate, bitDepth int, frames [][]int) error {
	channels := 1
	if len(frames) > 0 {
		channels = len(frames[0])
	}

	data := make([]int, 0, len(frames)*channels)
	for _, frame := range frames {
		data = append(data, frame...)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// SineFrames returns n frames of a 16-bit sine at freq Hz, identical on
// every channel.
func SineFrames(sampleRate, channels, n int, freq float64) [][]int {
	frames := make([][]int, n)
	for i := range frames {
		v := int(math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * 30000)
		frame := make([]int, channels)
		for c := range frame {
			frame[c] = v
		}
		frames[i] = frame
	}
	return frames
}

// TempWAV writes a 16-bit sine fixture into a fresh temp dir and returns
// its path.
func TempWAV(tb testing.TB, name string, sampleRate, channels, n int) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	WriteWAV(tb, path, sampleRate, 16, SineFrames(sampleRate, channels, n, 440))
	return path
}

// WriteAIFF encodes frames as a PCM AIFF file at path.
func WriteAIFF(tb testing.TB, path string, sampleRate, bitDepth int, frames [][]int) {
	tb.Helper()

	channels := 1
	if len(frames) > 0 {
		channels = len(frames[0])
	}

	data := make([]int, 0, len(frames)*channels)
	for _, frame := range frames {
		data = append(data, frame...)
	}

	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := goaiff.NewEncoder(f, sampleRate, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		tb.Fatalf("close %s: %v", path, err)
	}
}
