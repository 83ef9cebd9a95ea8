// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 18, A: 255}
	barColor        = color.RGBA{R: 95, G: 201, B: 119, A: 255}
)

// RenderPNG draws peaks as a waveform preview and returns the encoded PNG
// bytes. The image is len(peaks) pixels wide and height pixels tall; each
// peak becomes one column with a vertical bar centered on the midline,
// scaled so a peak of 1.0 spans the full height. Peaks are clamped into
// [0, 1] before drawing, and a zero peak still draws the midline pixel so
// silence stays visible.
func RenderPNG(peaks []float32, height int) ([]byte, error) {
	if len(peaks) == 0 {
		return nil, ErrNoPeaks
	}
	if height < 2 {
		return nil, ErrInvalidHeight
	}

	width := len(peaks)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, backgroundColor)
		}
	}

	mid := height / 2
	maxHalf := (height - 1) / 2
	for x, peak := range peaks {
		if peak < 0 {
			peak = 0
		}
		if peak > 1 {
			peak = 1
		}

		half := int(math.Round(float64(peak) * float64(maxHalf)))
		for y := mid - half; y <= mid+half; y++ {
			img.Set(x, y, barColor)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}

	return buf.Bytes(), nil
}
