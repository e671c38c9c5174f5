// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audread/utils"
)

// CollectPCM16 drains src and returns its interleaved samples as 16-bit PCM.
// bufferSize is rounded down to a whole number of frames; values below one
// frame fall back to the source's own BufSize.
func CollectPCM16(src Source, bufferSize int) ([]int16, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("collect: source reports %d channels", channels)
	}

	if bufferSize < channels {
		bufferSize = max(src.BufSize(), channels)
	}
	bufferSize -= bufferSize % channels

	// Start with roughly two seconds and let AppendInt16 grow from there.
	pcm := make([]int16, 0, src.SampleRate()*channels*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pcm = utils.AppendInt16(pcm, buf[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}

		if n == 0 {
			// Some decoders report (0, nil) once they run dry.
			break
		}
	}

	return pcm, nil
}
