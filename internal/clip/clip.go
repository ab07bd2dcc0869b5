package clip

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// EncodingError reports a failure to read or encode an audio clip.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode clip: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Clip is an audio file loaded into memory, ready to ship to the forensic
// engine or to fill a probe payload.
type Clip struct {
	Path string
	MIME string
	Data []byte
}

// Load reads the file at path and sniffs its MIME type from the content
// rather than the extension.
func Load(path string) (Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Clip{}, &EncodingError{Err: err}
	}
	return Clip{
		Path: path,
		MIME: mimetype.Detect(data).String(),
		Data: data,
	}, nil
}

// Base64 returns the clip payload as standard base64 text.
func (c Clip) Base64() string {
	return base64.StdEncoding.EncodeToString(c.Data)
}

// Encode reads r to EOF and returns the standard base64 encoding of its
// bytes. The same input bytes always yield the same output string.
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &EncodingError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// StripDataURL removes a "data:<mime>;base64," prefix when present so that
// payloads produced by browser-style file readers can be used directly.
func StripDataURL(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}
