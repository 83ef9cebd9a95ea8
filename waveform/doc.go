// SPDX-License-Identifier: EPL-2.0

// Package waveform summarizes audio clips for display.
//
// Rendering a full clip sample by sample is pointless once the clip is
// longer than the widget showing it. This package reduces a clip to one
// peak value per display column and optionally rasterizes those peaks to a
// PNG preview.
//
// # Summarizing
//
// Summarize splits a clip into equal frame ranges and reports the peak
// amplitude of each:
//
//	peaks, err := waveform.Summarize(buf, 800)
//
// Every frame of the clip counts toward exactly one bucket; the last bucket
// absorbs the division remainder. Values are peak magnitudes rather than
// averages, so a single click or pop in an otherwise quiet clip stays
// visible at any zoom level.
//
// # Rendering
//
// RenderPNG draws the peaks as vertical bars around a midline:
//
//	img, err := waveform.RenderPNG(peaks, 120)
//	os.WriteFile("preview.png", img, 0o644)
//
// The image is one pixel column per peak. Hosts that draw their own UI can
// ignore RenderPNG and consume the peak slice directly.
//
// # Regeneration
//
// Peaks are derived data. Regenerate them whenever the clip or the bucket
// count changes rather than patching them in place; Summarize is cheap
// enough to rerun on every change.
//
// # Errors
//
// The package defines sentinel errors for invalid input:
//   - ErrZeroBuckets: bucket count is zero or negative
//   - ErrEmptyBuffer: the clip holds no frames
//   - ErrNoPeaks: nothing to render
//   - ErrInvalidHeight: image height below two pixels
//
// Compare with errors.Is.
package waveform
