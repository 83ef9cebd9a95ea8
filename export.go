// SPDX-License-Identifier: EPL-2.0

package cliptrim

import (
	"fmt"
	"io"
	"os"

	"github.com/Ahmed00702/cliptrim/audio"
	"github.com/Ahmed00702/cliptrim/formats/wav"
)

// MaxGain is the upper bound of the gain range Export accepts. It matches
// the range a host would expose on a gain control.
const MaxGain float32 = 2.0

// exportSamples validates the request and returns the trimmed samples.
// Nothing is written anywhere until this has succeeded.
func exportSamples(buf *audio.Buffer, window audio.TimeWindow, gain float32) ([]float32, error) {
	if err := window.Validate(buf.Duration()); err != nil {
		return nil, err
	}
	if gain < 0 || gain > MaxGain {
		return nil, fmt.Errorf("%w: %v", ErrGainOutOfRange, gain)
	}

	return audio.Extract(buf, window, gain)
}

// Export trims buf to window, applies gain and writes the result to w as a
// 16-bit PCM WAV stream. It returns the number of samples the encoder had
// to clamp; a non-zero count means the gain pushed the clip past full scale
// but the output is still valid.
//
// The window and gain are validated before any byte reaches w, so a failed
// call never produces partial output.
func Export(w io.Writer, buf *audio.Buffer, window audio.TimeWindow, gain float32) (int, error) {
	samples, err := exportSamples(buf, window, gain)
	if err != nil {
		return 0, err
	}

	return wav.WritePCM16(w, samples, buf.SampleRate(), buf.Channels())
}

// ExportFile writes the trimmed clip to a new WAV file at path. The file is
// only created once validation and extraction have succeeded, and it is
// removed again when writing or closing fails, so no partial file survives
// a failed export.
func ExportFile(path string, buf *audio.Buffer, window audio.TimeWindow, gain float32) (int, error) {
	samples, err := exportSamples(buf, window, gain)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}

	clipped, err := wav.WritePCM16(f, samples, buf.SampleRate(), buf.Channels())
	if err != nil {
		f.Close()
		os.Remove(path)
		return 0, err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("closing %s: %w", path, err)
	}

	return clipped, nil
}
