// SPDX-License-Identifier: EPL-2.0

package audread

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/ik5/audread/decoder"
	"github.com/ik5/audread/internal/audiotest"
)

// fakeRunner stands in for ffmpeg, mpg123 and lame. Installed programs
// write a 16-bit sine WAV to their output argument; ffmpeg honours -ar.
type fakeRunner struct {
	installed map[string]bool
	fail      map[string]bool

	rate     int
	channels int
	frames   int

	mu    sync.Mutex
	calls [][]string
}

func newFakeRunner(programs ...string) *fakeRunner {
	installed := make(map[string]bool, len(programs))
	for _, p := range programs {
		installed[p] = true
	}

	return &fakeRunner{
		installed: installed,
		fail:      map[string]bool{},
		rate:      44100,
		channels:  2,
		frames:    1000,
	}
}

// Run never calls FailNow: loader tests drive it from worker goroutines.
func (f *fakeRunner) Run(name string, args ...string) error {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	if !f.installed[name] {
		return fmt.Errorf("%w: %s", decoder.ErrNotFound, name)
	}

	out := args[len(args)-1]
	if name == "mpg123" {
		out = args[2]
	}

	if f.fail[name] {
		// leave a truncated file behind like a crashed decoder would
		if err := os.WriteFile(out, []byte("RIFF"), 0o600); err != nil {
			return fmt.Errorf("write partial output: %w", err)
		}
		return &decoder.ExitError{Name: name, Code: 1, Stderr: "invalid data found when processing input"}
	}

	rate := f.rate
	for i, a := range args {
		if a == "-ar" && i+1 < len(args) {
			r, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("bad -ar value %q: %w", args[i+1], err)
			}
			rate = r
		}
	}

	return audiotest.EncodeWAV(out, rate, 16, audiotest.SineFrames(rate, f.channels, f.frames, 440))
}

func (f *fakeRunner) programs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, len(f.calls))
	for i, c := range f.calls {
		names[i] = c[0]
	}
	return names
}

func (f *fakeRunner) call(i int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[i]
}

// touch creates an input file whose content the fake decoders ignore.
func touch(tb testing.TB, path string) string {
	tb.Helper()

	if err := os.WriteFile(path, []byte("not really audio"), 0o600); err != nil {
		tb.Fatalf("touch %s: %v", path, err)
	}
	return path
}

// entries lists the names in dir.
func entries(tb testing.TB, dir string) []string {
	tb.Helper()

	des, err := os.ReadDir(dir)
	if err != nil {
		tb.Fatalf("read dir %s: %v", dir, err)
	}

	names := make([]string, 0, len(des))
	for _, de := range des {
		names = append(names, de.Name())
	}
	return names
}
