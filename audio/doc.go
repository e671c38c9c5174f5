// SPDX-License-Identifier: EPL-2.0

// Package audio holds the data types shared by the loader and the format
// packages.
//
// # Stream
//
// Stream is the in-memory result of reading a file: sample rate, sample
// width in bytes, channel count and a frame-major matrix of signed integer
// samples.
//
//	s, _ := wav.ParseFile("take.wav")
//	fmt.Println(s) // 44100 Hz, 16 bit, 2 channel(s), 2421504 samples
//	norm := s.Normalize()
//
// Normalize divides by 2^(8*width-1), which maps every integer width onto
// [-1, 1).
//
// # Source
//
// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
// The native decoders in formats/* return Sources, and Resampler wraps one
// Source to produce another at a different rate:
//
//	res := audio.NewResampler(src, 22050)
//	pcm, err := audio.CollectPCM16(res, 4096)
//
// IntSource adapts the integer PCM of go-audio's WAV and AIFF decoders to a
// Source.
//
// A Source reports io.EOF once it is drained:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// # Registry
//
// Registry maps file extensions to in-process Decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register(mp3.Decoder{}, "mp3")
//	reg.Register(aiff.Decoder{}, "aif", "aiff")
//	dec, ok := reg.Get(".AIFF")
package audio
