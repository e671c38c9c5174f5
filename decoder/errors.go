// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the executable could not be located or launched
	// because it does not exist. The chain moves on to the next candidate.
	ErrNotFound = errors.New("executable not found")

	// ErrNoDecoder means no candidate for the extension could be launched.
	ErrNoDecoder = errors.New("no appropriate decoder found")
)

// Error records a decoder or resampler run that failed.
type Error struct {
	Msg     string
	Command []string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	if len(e.Command) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Command, " "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// ExitError is returned by a Runner when the program started but exited
// with a nonzero status.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

func noDecoder(ext string, names []string) error {
	return fmt.Errorf("%w for %q files; check that one of these programs is on the search path: %s "+
		"(install one of them or add its directory to the search path)",
		ErrNoDecoder, ext, strings.Join(names, ", "))
}
