// SPDX-License-Identifier: EPL-2.0

// Package cliptrim loads audio clips, trims a time window out of them with
// gain, and exports the result as 16-bit PCM WAV.
//
// This package is the high-level entry point. It wires the format decoders,
// the trim processor and the WAV encoder into two small call paths: one for
// previewing a clip and one for exporting a selection. The building blocks
// live in subpackages and can be used directly when more control is needed.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//
// Export always produces 16-bit PCM WAV.
//
// # Quick Start
//
// Load a clip, cut three seconds out of it, write the cut as WAV:
//
//	buf, err := cliptrim.Load("input.mp3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	window := audio.TimeWindow{Start: 10, End: 13}
//	clipped, err := cliptrim.ExportFile("cut.wav", buf, window, 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if clipped > 0 {
//	    log.Printf("%d samples clipped", clipped)
//	}
//
// # Preview and Export
//
// The two call paths are independent and share only the Buffer:
//
//	// Preview: peaks for drawing
//	peaks, _ := waveform.Summarize(buf, 800)
//
//	// Export: trim, gain, encode
//	clipped, _ := cliptrim.Export(w, buf, window, 1.2)
//
// Neither path mutates the buffer, so the same Buffer can back any number
// of previews and exports.
//
// # Gain
//
// Export accepts gain in [0, MaxGain]. Gain above 1.0 can push samples past
// full scale; the encoder clamps those samples and reports how many were
// affected instead of failing. A zero gain is valid and exports silence.
//
// # Format Registry
//
// Load picks a decoder by file extension through a registry. Decode does
// the same for any reader given an explicit format key:
//
//	buf, err := cliptrim.Decode(resp.Body, "ogg")
//
// DefaultRegistry returns the built-in format set for hosts that want to
// register their own decoders next to it.
//
// See the audio, waveform and formats subpackages for the underlying pieces.
package cliptrim
