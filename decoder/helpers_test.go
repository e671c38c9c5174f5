// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"fmt"
	"sync"
)

type call struct {
	name string
	args []string
}

// fakeRunner answers with a fixed result per executable; names without an
// entry behave as if they were not installed.
type fakeRunner struct {
	mu      sync.Mutex
	results map[string]error
	calls   []call
}

func newFakeRunner(results map[string]error) *fakeRunner {
	return &fakeRunner{results: results}
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{name: name, args: args})

	err, ok := f.results[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

func (f *fakeRunner) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, len(f.calls))
	for i, c := range f.calls {
		names[i] = c.name
	}
	return names
}
