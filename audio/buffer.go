// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// readChunk is the slice size ReadAll hands to Source.ReadSamples per call.
const readChunk = 4096

// Buffer holds a fully decoded clip: interleaved float32 samples together
// with the channel count and sample rate needed to interpret them. Samples
// are laid out frame by frame, so for a stereo clip index 0 is the first
// left sample, index 1 the first right sample, index 2 the second left
// sample, and so on.
//
// A Buffer never holds a partial frame. Construction enforces that the
// sample count is a multiple of the channel count, which keeps every
// frame-based computation (Frames, Duration, trimming, bucketing) exact.
type Buffer struct {
	samples    []float32
	channels   int
	sampleRate int
}

// NewBuffer wraps interleaved samples in a Buffer. The slice is retained,
// not copied; the caller must not mutate it afterwards. An empty slice is
// valid and yields a zero-frame buffer.
func NewBuffer(samples []float32, channels, sampleRate int) (*Buffer, error) {
	if channels < 1 {
		return nil, ErrNoChannels
	}
	if sampleRate < 1 {
		return nil, ErrInvalidSampleRate
	}
	if len(samples)%channels != 0 {
		return nil, ErrPartialFrame
	}

	return &Buffer{
		samples:    samples,
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

// Samples returns the interleaved sample data. Callers must treat the
// returned slice as read-only.
func (b *Buffer) Samples() []float32 { return b.samples }

// Channels returns the number of interleaved channels.
func (b *Buffer) Channels() int { return b.channels }

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Frames returns the number of frames, i.e. samples per channel.
func (b *Buffer) Frames() int { return len(b.samples) / b.channels }

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.sampleRate)
}

// ReadAll drains src into a Buffer. A trailing partial frame, which can
// appear when a stream is truncated mid-frame, is dropped so that the
// buffer invariant holds.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}
	rate := src.SampleRate()
	if rate < 1 {
		return nil, ErrInvalidSampleRate
	}

	var samples []float32
	chunk := make([]float32, readChunk)

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			samples = append(samples, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	samples = samples[:len(samples)-len(samples)%channels]
	return NewBuffer(samples, channels, rate)
}
