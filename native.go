// SPDX-License-Identifier: EPL-2.0

package audread

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audread/audio"
	"github.com/ik5/audread/decoder"
	"github.com/ik5/audread/formats/aiff"
	"github.com/ik5/audread/formats/mp3"
	"github.com/ik5/audread/formats/vorbis"
	"github.com/ik5/audread/formats/wav"
)

var errUnsupportedNative = errors.New("no in-process decoder for extension")

// nativeBufSize is the read size used when draining in-process decoders.
const nativeBufSize = 4096

func nativeRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(mp3.Decoder{}, "mp3")
	reg.Register(aiff.Decoder{}, "aif", "aiff")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")
	reg.Register(wav.Decoder{}, "wav")
	return reg
}

// nativeDecode decodes in with the registered Go decoder and writes 16-bit
// PCM to out.
func (l *Loader) nativeDecode(in, out string) error {
	ext := strings.ToLower(filepath.Ext(in))

	dec, ok := l.registry.Get(ext)
	if !ok {
		return fmt.Errorf("%w: %s", errUnsupportedNative, ext)
	}

	l.logger.Debug("decoding in-process", "input", in, "ext", ext)

	if err := l.transcode(in, out, dec, 0); err != nil {
		return &decoder.Error{Msg: "problem appeared during in-process decoding", Command: []string{"in-process", in, out}, Err: err}
	}

	l.logger.Info("decoded", "ext", ext, "command", "in-process")
	return nil
}

// nativeResample converts the WAV at in to rate Hz with audio.Resampler.
func (l *Loader) nativeResample(in, out string, rate int) error {
	dec, _ := l.registry.Get("wav")

	if err := l.transcode(in, out, dec, rate); err != nil {
		return &decoder.Error{Msg: "problem appeared during in-process resampling", Command: []string{"in-process", in, out}, Err: err}
	}
	return nil
}

// transcode runs in through dec, optionally resamples to rate (0 keeps the
// source rate) and writes the result to out as a 16-bit WAV.
func (l *Loader) transcode(in, out string, dec audio.Decoder, rate int) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if rate > 0 && rate != src.SampleRate() {
		src = audio.NewResampler(src, rate)
	}
	defer src.Close()

	pcm, err := audio.CollectPCM16(src, nativeBufSize)
	if err != nil {
		return err
	}

	return wav.WriteFile(out, src.SampleRate(), src.Channels(), pcm)
}
