// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts one float32 sample to 16-bit PCM by rounding
// x*32767 to the nearest integer and clamping the result into the int16
// range. The boolean reports whether clamping fired, which happens when the
// scaled value falls outside [-32768, 32767], for example after gain above
// one on near-full-scale material.
func Float32ToInt16(x float32) (int16, bool) {
	scaled := math.Round(float64(x) * 32767.0)

	if scaled > math.MaxInt16 {
		return math.MaxInt16, true
	}
	if scaled < math.MinInt16 {
		return math.MinInt16, true
	}

	return int16(scaled), false
}
