// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNoSamples is returned when there is nothing to encode.
	ErrNoSamples = errors.New("no samples to encode")

	// ErrNoChannels is returned when the channel count is zero or negative.
	ErrNoChannels = errors.New("channel count must be positive")

	// ErrInvalidSampleRate is returned when the sample rate is zero or negative.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrPartialFrame is returned when the sample count is not a multiple of
	// the channel count.
	ErrPartialFrame = errors.New("sample count is not a multiple of channel count")

	// ErrDataTooLarge is returned when the encoded data chunk would not fit
	// in the 32-bit RIFF size fields.
	ErrDataTooLarge = errors.New("sample data exceeds WAV size limit")

	// ErrNotWavFile is returned when the input does not carry a RIFF/WAVE
	// signature.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedFormat is returned for WAV files whose format code is not
	// plain PCM.
	ErrUnsupportedFormat = errors.New("only PCM WAV is supported")

	// ErrUnsupportedBitDepth is returned for PCM files with a bit depth other
	// than 8, 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
