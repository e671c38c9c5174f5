// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files through github.com/go-audio/wav.
//
// Parse and ParseFile load a whole file into an audio.Stream, keeping the
// integer samples at their stored width (8, 16, 24 or 32 bit). 8-bit data is
// unsigned on disk and is re-centred on zero so every width is signed in
// memory:
//
//	s, err := wav.ParseFile("speech.wav")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s) // 16000 Hz, 16 bit, 1 channel(s), 48000 samples
//
// Decoder streams the same files as an audio.Source of float32 samples for
// the resampler and the in-process transcoding path.
//
// Write, WriteWAV16 and WriteFile produce 16-bit PCM. The go-audio encoder
// patches the header sizes on Close, so the destination must be an
// io.WriteSeeker.
//
// Only uncompressed PCM is accepted (format tag 1, or WAVE_FORMAT_EXTENSIBLE).
// Float and compressed WAV files fail with ErrUnsupportedWavLayout.
package wav
