// SPDX-License-Identifier: EPL-2.0

package audread

import (
	"errors"

	"github.com/ik5/audread/decoder"
)

var (
	// ErrFileNotFound is returned before any work when the input path does
	// not exist.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrNoDecoderFound is returned when no configured decoder for the
	// input extension could be launched. The message lists the programs.
	ErrNoDecoderFound = decoder.ErrNoDecoder
)
