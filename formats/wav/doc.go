// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is delegated to github.com/go-audio/wav, so any PCM bit depth
// from 8 to 32 and any chunk layout is accepted. Encoding always produces
// the canonical 44-byte-header 16-bit PCM form, which every audio tool
// understands.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0], whatever the bit depth of the file.
//
// # Writing WAV Files
//
// Use WritePCM16 to stream a WAV file to a writer:
//
//	samples := []float32{0.1, -0.1, 0.2, -0.2}
//	file, _ := os.Create("output.wav")
//	clipped, err := wav.WritePCM16(file, samples, 8000, 1)
//
// or Encode to get the complete file as a byte slice:
//
//	data, err := wav.Encode(samples, 8000, 1)
//
// Samples are scaled by 32767, rounded and clamped into [-32768, 32767].
// WritePCM16 reports how many samples were clamped; a nonzero count means
// the input exceeded full scale and the output is clipped at the extremes.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedFormat: The file is not plain PCM
//   - ErrUnsupportedBitDepth: The PCM bit depth is not 8, 16, 24 or 32
//   - ErrNoSamples, ErrPartialFrame, ...: Invalid encode input
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// Encoded files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: little-endian int16 samples, channels interleaved
//
// The byte rate and block align fields are derived from the sample rate and
// channel count; the RIFF size field covers everything after its own eight
// byte chunk header.
package wav
