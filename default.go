// SPDX-License-Identifier: EPL-2.0

package audread

import "github.com/ik5/audread/audio"

// Read loads path with a default Loader. See Loader.Read.
func Read(path string, opts ReadOptions) (*audio.Stream, error) {
	return New().Read(path, opts)
}

// Decode converts in to WAV with a default Loader. See Loader.Decode.
func Decode(in, out string) (string, error) {
	return New().Decode(in, out)
}

// ConvertToWav replaces path with a WAV file using a default Loader. See
// Loader.ConvertToWav.
func ConvertToWav(path string) (string, error) {
	return New().ConvertToWav(path)
}
