// SPDX-License-Identifier: EPL-2.0

package tempfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPath_UniqueAndSuffixed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	seen := make(map[string]bool)

	for range 100 {
		p := Path(dir, ".wav")
		require.Equal(t, dir, filepath.Dir(p))
		require.True(t, strings.HasSuffix(p, ".wav"))
		require.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true

		_, err := uuid.Parse(strings.TrimSuffix(filepath.Base(p), ".wav"))
		require.NoError(t, err)
	}
}

func TestPath_DefaultsToSystemTempDir(t *testing.T) {
	t.Parallel()

	p := Path("", ".wav")
	require.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(p))

	_, err := os.Stat(p)
	require.ErrorIs(t, err, os.ErrNotExist, "Path must not create the file")
}

func TestRemove(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "scratch.wav")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	require.NoError(t, Remove(p))
	_, err := os.Stat(p)
	require.ErrorIs(t, err, os.ErrNotExist)

	// second removal is a no-op
	require.NoError(t, Remove(p))
}
