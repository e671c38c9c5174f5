// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile             = errors.New("not a WAV file")
	ErrUnsupportedWavLayout   = errors.New("unsupported WAV layout")
	ErrUnsupportedSampleWidth = errors.New("unsupported WAV sample width")
	ErrNoSeeker               = errors.New("WAV writer needs an io.WriteSeeker")
)
