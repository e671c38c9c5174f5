// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF sound files with github.com/go-audio/aiff.
//
// It backs the in-process fallback for ".aif" and ".aiff" inputs when no
// external decoder can be launched.
//
//	f, _ := os.Open("take.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // compressed or unusual sample size
//	}
//
// Samples come back as float32 in [-1, 1]. 8, 16, 24 and 32-bit PCM are
// accepted. AIFF is big-endian and stores its rate as an 80-bit float; the
// go-audio decoder hides both details.
package aiff
