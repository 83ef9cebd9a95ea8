// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrZeroBuckets is returned by Summarize when the bucket count is zero
	// or negative.
	ErrZeroBuckets = errors.New("bucket count must be positive")

	// ErrEmptyBuffer is returned by Summarize when the buffer holds no
	// frames. Callers should special-case empty clips before rendering.
	ErrEmptyBuffer = errors.New("buffer contains no frames")

	// ErrNoPeaks is returned by RenderPNG when the peak slice is empty.
	ErrNoPeaks = errors.New("no peaks to render")

	// ErrInvalidHeight is returned by RenderPNG when the image height is
	// below two pixels.
	ErrInvalidHeight = errors.New("height must be at least 2 pixels")
)
