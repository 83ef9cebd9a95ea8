package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/Ahmed00702/cliptrim/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	signBound  int64 // fold threshold for depths go-audio may hand back as raw unsigned words
	scale      float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Resize buffer if needed
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
		dst[i] = float32(v) * s.scale
	}

	return n, nil
}

// Decoder decodes AIFF files into Sources.
type Decoder struct{}

// Decode opens an AIFF stream. Inputs that do not implement io.ReadSeeker
// are buffered in memory first, because go-audio needs to seek while
// walking chunks.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("buffering aiff input: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	// AIFF stores signed PCM at every depth, including 8-bit
	var scale float32
	var signBound int64
	switch dec.BitDepth {
	case 8:
		scale, signBound = 1.0/128.0, 128
	case 16:
		scale = 1.0 / 32768.0
	case 24:
		scale, signBound = 1.0/8388608.0, 8388608
	case 32:
		scale = 1.0 / 2147483648.0
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		signBound:  signBound,
		scale:      scale,
	}, nil
}
