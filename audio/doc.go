// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core types for clip trimming.
//
// This package contains the building blocks the rest of the module works on:
//   - Source interface for decoded audio input
//   - Buffer holding a fully decoded clip in memory
//   - TimeWindow describing a selection in seconds
//   - Extract for trimming a window out of a clip with gain
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is what every format decoder produces:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Sources stream interleaved samples; ReadAll collects a whole stream into
// a Buffer when random access is needed.
//
// # Buffers
//
// A Buffer is an immutable in-memory clip:
//
//	buf, err := audio.NewBuffer(samples, 2, 44100)
//	fmt.Println(buf.Frames(), buf.Duration())
//
// Construction validates that the sample slice holds whole frames only, so
// every operation downstream can convert freely between sample and frame
// indices.
//
// # Trimming
//
// Extract selects a time window from a buffer and applies linear gain in a
// single pass:
//
//	window := audio.TimeWindow{Start: 1.5, End: 3.0}
//	samples, err := audio.Extract(buf, window, 0.8)
//
// Window edges round to the nearest frame and clamp into the clip. The
// output is plain interleaved samples, ready for encoding or further
// processing.
//
// # Format Registry
//
// The registry allows dynamic decoder registration keyed by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV") // keys are normalized
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are represented as float32, nominally in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Gain above 1 can push samples outside the nominal range. That is allowed
// everywhere in this package; the 16-bit encoder clamps and counts such
// samples when the clip is finally written out.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the input:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Decode error
//	    }
//	    // Process n samples from buf
//	}
//
// Validation failures are reported through the package sentinel errors
// (ErrNoChannels, ErrEmptySelection, ...) and can be tested with errors.Is.
package audio
