// SPDX-License-Identifier: EPL-2.0

package audio

// TimeWindow selects the region of a clip between Start and End, both in
// seconds from the beginning of the clip.
type TimeWindow struct {
	Start float64
	End   float64
}

// Duration returns the window length in seconds.
func (w TimeWindow) Duration() float64 { return w.End - w.Start }

// Validate checks that the window is well formed and lies inside a clip of
// the given duration: 0 <= Start < End <= duration. Entry points such as
// Export and the command line call Validate before trimming; Extract itself
// clamps instead, so out-of-range windows passed directly to it degrade to
// the nearest valid selection rather than failing.
func (w TimeWindow) Validate(duration float64) error {
	if w.End <= w.Start {
		return ErrWindowReversed
	}
	if w.Start < 0 || w.End > duration {
		return ErrWindowOutOfRange
	}

	return nil
}
