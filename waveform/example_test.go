// SPDX-License-Identifier: EPL-2.0

package waveform_test

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/Ahmed00702/cliptrim/audio"
	"github.com/Ahmed00702/cliptrim/formats/wav"
	"github.com/Ahmed00702/cliptrim/waveform"
)

// Example demonstrates generating a waveform preview for a WAV file.
func Example() {
	f, err := os.Open("clip.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := wav.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		log.Fatal(err)
	}

	// One peak per pixel column of an 800px wide preview
	peaks, err := waveform.Summarize(buf, 800)
	if err != nil {
		log.Fatal(err)
	}

	img, err := waveform.RenderPNG(peaks, 120)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("preview.png", img, 0o644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("preview written")
}

// ExampleSummarize shows peak bucketing over a small clip.
func ExampleSummarize() {
	samples := []float32{0.1, -0.4, 0.2, 0.9, -0.3, 0.5}
	buf, err := audio.NewBuffer(samples, 1, 8000)
	if err != nil {
		log.Fatal(err)
	}

	peaks, err := waveform.Summarize(buf, 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.1f\n", peaks)
	// Output: [0.4 0.9 0.5]
}

// ExampleRenderPNG shows rendering peaks into an image.
func ExampleRenderPNG() {
	peaks := []float32{0.2, 0.8, 0.5, 1.0}

	img, err := waveform.RenderPNG(peaks, 64)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%dx%d\n", cfg.Width, cfg.Height)
	// Output: 4x64
}
