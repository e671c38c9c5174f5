// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner starts an external program and waits for it to exit.
//
// Run returns nil on a zero exit status, an error wrapping ErrNotFound when
// the executable does not exist, and *ExitError when it ran and failed.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs programs with os/exec, resolving them against an explicit
// list of directories instead of the process environment.
type ExecRunner struct {
	SearchPath []string
}

// NewExecRunner resolves executables in dirs. With no dirs it snapshots
// $PATH once.
func NewExecRunner(dirs ...string) *ExecRunner {
	if len(dirs) == 0 {
		dirs = filepath.SplitList(os.Getenv("PATH"))
	}
	return &ExecRunner{SearchPath: dirs}
}

// LookPath finds name in SearchPath. Names containing a path separator are
// checked as given.
func (r *ExecRunner) LookPath(name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		path, err := exec.LookPath(name)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return path, nil
	}

	for _, dir := range r.SearchPath {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if !strings.ContainsRune(candidate, filepath.Separator) {
			// "." joins to the bare name, which exec.LookPath would
			// resolve against $PATH
			candidate = "." + string(filepath.Separator) + candidate
		}
		path, err := exec.LookPath(candidate)
		if err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (r *ExecRunner) Run(name string, args ...string) error {
	path, err := r.LookPath(name)
	if err != nil {
		return err
	}

	//nolint:gosec // G204: the executable comes from the configured decoder list
	cmd := exec.Command(path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Name:   name,
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
		}
		return fmt.Errorf("starting %s: %w", name, err)
	}

	return nil
}
