// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Extract copies the frames selected by window out of buf, multiplying every
// sample by gain. The result keeps the interleaved channel layout of the
// input and always covers whole frames, never a partial one.
//
// Window edges are converted to frame indices by rounding Start*rate and
// End*rate to the nearest frame, then clamping into [0, Frames]. Rounding
// matches what a seconds-based control displays and avoids a systematic
// bias toward earlier frames. A window that still selects no frames after
// clamping yields ErrEmptySelection.
//
// Gain is applied uniformly to all channels. The output is not clamped to
// [-1, 1]; values pushed beyond full scale stay there until encoding, where
// the clamp is applied and counted.
func Extract(buf *Buffer, window TimeWindow, gain float32) ([]float32, error) {
	if gain < 0 {
		return nil, ErrNegativeGain
	}

	frames := buf.Frames()
	start := frameIndex(window.Start, buf.SampleRate(), frames)
	end := frameIndex(window.End, buf.SampleRate(), frames)
	if start >= end {
		return nil, ErrEmptySelection
	}

	channels := buf.Channels()
	src := buf.Samples()[start*channels : end*channels]

	out := make([]float32, len(src))
	for i, s := range src {
		out[i] = s * gain
	}

	return out, nil
}

// frameIndex converts a position in seconds to a frame index clamped into
// [0, frames].
func frameIndex(seconds float64, sampleRate, frames int) int {
	idx := int(math.Round(seconds * float64(sampleRate)))
	if idx < 0 {
		return 0
	}
	if idx > frames {
		return frames
	}

	return idx
}
