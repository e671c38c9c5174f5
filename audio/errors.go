// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleWidth = errors.New("sample width must be between 1 and 4 bytes")
	ErrRaggedFrame        = errors.New("frame length does not match channel count")
)
