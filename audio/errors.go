// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrNoChannels is returned when a channel count is zero or negative.
	ErrNoChannels = errors.New("channel count must be positive")

	// ErrInvalidSampleRate is returned when a sample rate is zero or negative.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrPartialFrame is returned when a sample slice does not hold a whole
	// number of frames, that is, its length is not a multiple of the channel
	// count.
	ErrPartialFrame = errors.New("sample count is not a multiple of channel count")

	// ErrNegativeGain is returned by Extract when the gain factor is below
	// zero. Zero itself is allowed and produces silence.
	ErrNegativeGain = errors.New("gain must not be negative")

	// ErrEmptySelection is returned by Extract when the requested window
	// rounds to zero frames.
	ErrEmptySelection = errors.New("selection contains no frames")

	// ErrWindowReversed is returned by TimeWindow.Validate when the end time
	// is not after the start time.
	ErrWindowReversed = errors.New("window end must be after window start")

	// ErrWindowOutOfRange is returned by TimeWindow.Validate when the window
	// does not lie inside the clip.
	ErrWindowOutOfRange = errors.New("window lies outside the clip")

	// ErrUnknownFormat is returned when no decoder is registered for a
	// requested format key.
	ErrUnknownFormat = errors.New("no decoder registered for format")
)
