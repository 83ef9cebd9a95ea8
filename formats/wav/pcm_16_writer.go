// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/Ahmed00702/cliptrim/utils"
)

// headerSize is the canonical RIFF/WAVE header length for a PCM file with a
// single fmt chunk followed by the data chunk.
const headerSize = 44

// WritePCM16 serializes interleaved float32 samples to w as a 16-bit PCM
// WAV stream. Each sample is scaled by 32767, rounded to the nearest integer
// and clamped into the int16 range; the returned count is the number of
// samples the clamp had to touch. A nonzero count means the material was
// driven past full scale, usually by gain above one, and came out audibly
// clipped rather than wrapped.
//
// samples must hold a whole number of frames, so its length must be a
// multiple of channels.
func WritePCM16(w io.Writer, samples []float32, sampleRate, channels int) (int, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	if channels < 1 {
		return 0, ErrNoChannels
	}
	if sampleRate < 1 {
		return 0, ErrInvalidSampleRate
	}
	if len(samples)%channels != 0 {
		return 0, ErrPartialFrame
	}

	dataSize := uint64(len(samples)) * 2
	if dataSize > math.MaxUint32-36 {
		return 0, ErrDataTooLarge
	}

	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := uint16(channels) * (bitsPerSample / 8)
	riffSize := 36 + uint32(dataSize)

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	// Convert and write samples in chunks to keep the staging buffer small
	// on large clips.
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	clipped := 0
	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			v, clip := utils.Float32ToInt16(s)
			if clip {
				clipped++
			}
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(v))
		}

		if _, err := w.Write(buf); err != nil {
			return clipped, fmt.Errorf("writing samples: %w", err)
		}
	}

	return clipped, nil
}

// Encode builds a complete 16-bit PCM WAV file in memory and returns its
// bytes. The clipped sample count from WritePCM16 is folded away; use
// WritePCM16 directly when the caller needs it.
func Encode(samples []float32, sampleRate, channels int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize + len(samples)*2)

	if _, err := WritePCM16(&buf, samples, sampleRate, channels); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
