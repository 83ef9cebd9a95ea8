// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/Ahmed00702/cliptrim/audio"
)

// Summarize reduces buf to buckets peak values, one per display column.
//
// The frame range [0, Frames) is split into buckets contiguous ranges of
// width Frames/buckets each; the last bucket also absorbs the remainder of
// the integer division, so every frame lands in exactly one bucket. A
// bucket's value is the largest absolute sample over all channels and all
// frames in its range. Peak detection rather than averaging keeps short
// transients visible in the summary.
//
// When buckets exceeds the frame count, buckets receiving zero frames have
// value 0. For samples inside [-1, 1] every value lies in [0, 1].
//
// Summarize never modifies buf and performs no I/O.
func Summarize(buf *audio.Buffer, buckets int) ([]float32, error) {
	if buckets <= 0 {
		return nil, ErrZeroBuckets
	}

	frames := buf.Frames()
	if frames == 0 {
		return nil, ErrEmptyBuffer
	}

	channels := buf.Channels()
	samples := buf.Samples()
	width := frames / buckets

	peaks := make([]float32, buckets)
	for i := 0; i < buckets; i++ {
		start := i * width
		end := start + width
		if i == buckets-1 {
			end = frames
		}

		var peak float32
		for _, v := range samples[start*channels : end*channels] {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}

		peaks[i] = peak
	}

	return peaks, nil
}
