// SPDX-License-Identifier: EPL-2.0

// Package tempfile names and removes scratch files for decoder output.
package tempfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Path returns a fresh path <dir>/<uuid><suffix>. The file is not created;
// an empty dir means os.TempDir().
func Path(dir, suffix string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, uuid.New().String()+suffix)
}

// Remove deletes path. A file that is already gone is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
