// SPDX-License-Identifier: EPL-2.0

package cliptrim

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Ahmed00702/cliptrim/audio"
	"github.com/Ahmed00702/cliptrim/formats/aiff"
	"github.com/Ahmed00702/cliptrim/formats/mp3"
	"github.com/Ahmed00702/cliptrim/formats/vorbis"
	"github.com/Ahmed00702/cliptrim/formats/wav"
)

var defaultRegistry = DefaultRegistry()

// DefaultRegistry returns a fresh registry with every built-in decoder
// registered under its usual file extensions. Callers that need a custom
// format set can modify the returned registry without affecting the
// package-level Load and Decode functions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aifc", aiff.Decoder{})
	return r
}

// Decode reads one clip from r using the decoder registered for format and
// buffers it fully. The format key is matched case-insensitively and may
// carry a leading dot, so file extensions work verbatim.
func Decode(r io.Reader, format string) (*audio.Buffer, error) {
	decoder, ok := defaultRegistry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
	}

	src, err := decoder.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	defer src.Close()

	return audio.ReadAll(src)
}

// Load opens the file at path and decodes it according to its extension.
func Load(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, filepath.Ext(path))
}
