// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/Ahmed00702/cliptrim/audio"
)

// pcmFormatCode is the fmt chunk format tag for uncompressed PCM.
const pcmFormatCode = 1

// wavSource adapts a go-audio wav decoder to the audio.Source interface,
// normalizing whatever integer bit depth the file uses to float32 in [-1, 1].
type wavSource struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	offset     float32 // subtracted before scaling; nonzero for unsigned 8-bit
	signBound  int64   // fold threshold for depths go-audio may hand back as raw unsigned words
	scale      float32
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading pcm data: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		v := int64(s.intBuf.Data[i])
		if s.signBound > 0 && v >= s.signBound {
			// Raw unsigned word; fold it back into the signed range.
			v -= 2 * s.signBound
		}
		dst[i] = (float32(v) - s.offset) * s.scale
	}

	return n, nil
}

// Decoder reads PCM WAV files. Decoding is delegated to
// github.com/go-audio/wav, which walks the RIFF chunk list instead of
// assuming a canonical 44-byte header, so files with LIST, INFO or cue
// chunks decode fine.
type Decoder struct{}

// Decode validates the RIFF/WAVE signature and returns a Source streaming
// the file's PCM data. If r is not an io.ReadSeeker, the remaining input is
// buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("buffering wav input: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != pcmFormatCode {
		return nil, fmt.Errorf("%w: format code %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}
	if dec.NumChans < 1 || dec.SampleRate < 1 {
		return nil, ErrNotWavFile
	}

	var offset, scale float32
	var signBound int64
	switch dec.BitDepth {
	case 8:
		// 8-bit WAV is unsigned, centered on 128.
		offset, scale = 128, 1.0/128.0
	case 16:
		scale = 1.0 / 32768.0
	case 24:
		scale, signBound = 1.0/8388608.0, 8388608
	case 32:
		scale = 1.0 / 2147483648.0
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		offset:     offset,
		signBound:  signBound,
		scale:      scale,
	}, nil
}
