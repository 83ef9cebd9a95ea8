// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Ahmed00702/cliptrim"
	"github.com/Ahmed00702/cliptrim/audio"
	"github.com/Ahmed00702/cliptrim/waveform"
)

func main() {
	in := flag.String("in", "", "Input audio file (wav, mp3, ogg, aiff)")
	out := flag.String("out", "trimmed.wav", "Output WAV file path (empty = no export)")
	start := flag.Float64("start", 0, "Selection start in seconds")
	end := flag.Float64("end", -1, "Selection end in seconds (-1 = end of clip)")
	gain := flag.Float64("gain", 1.0, "Gain applied to the selection (0 to 2)")
	preview := flag.String("waveform", "", "Optional PNG path for a waveform preview of the whole clip")
	buckets := flag.Int("buckets", 800, "Waveform preview width in pixels")
	height := flag.Int("height", 120, "Waveform preview height in pixels")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		flag.Usage()
		os.Exit(1)
	}

	buf, err := cliptrim.Load(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *in, err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %s: %.2f s, %d Hz, %d channel(s)\n",
		*in, buf.Duration(), buf.SampleRate(), buf.Channels())

	if *preview != "" {
		peaks, err := waveform.Summarize(buf, *buckets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error summarizing clip: %v\n", err)
			os.Exit(1)
		}

		img, err := waveform.RenderPNG(peaks, *height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering waveform: %v\n", err)
			os.Exit(1)
		}

		if err := os.WriteFile(*preview, img, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *preview, err)
			os.Exit(1)
		}

		fmt.Printf("Waveform preview written to %s (%dx%d)\n", *preview, *buckets, *height)
	}

	if *out == "" {
		return
	}

	window := audio.TimeWindow{Start: *start, End: *end}
	if window.End < 0 {
		window.End = buf.Duration()
	}

	clipped, err := cliptrim.ExportFile(*out, buf, window, float32(*gain))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting selection: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s: %.2f s at gain %.2f\n", *out, window.Duration(), *gain)
	if clipped > 0 {
		fmt.Printf("Warning: %d samples clipped during encoding\n", clipped)
	}
}
