package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when the filename suffix does not match
// any supported format. Dispatch happens before any byte of the buffer is
// inspected.
var ErrUnsupportedFormat = errors.New("unsupported file type")

type extractFunc func(data []byte) (string, error)

// formats is the closed set of supported formats, in dispatch priority order.
// Adding a format means adding one entry plus its extractor.
var formats = []struct {
	suffix string
	fn     extractFunc
}{
	{".pdf", extractPDF},
	{".docx", extractDOCX},
	{".pptx", extractPPTX},
	{".txt", extractTXT},
}

// FromFile extracts plain text from a document buffer, dispatching on the
// case-insensitive filename suffix. The output is not trimmed or truncated
// here; the prompt builder owns the character ceiling.
func FromFile(data []byte, filename string) (string, error) {
	lower := strings.ToLower(filename)
	for _, f := range formats {
		if strings.HasSuffix(lower, f.suffix) {
			text, err := f.fn(data)
			if err != nil {
				return "", fmt.Errorf("extract %s: %w", f.suffix, err)
			}
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// Supported reports whether the filename suffix matches a supported format.
func Supported(filename string) bool {
	lower := strings.ToLower(filename)
	for _, f := range formats {
		if strings.HasSuffix(lower, f.suffix) {
			return true
		}
	}
	return false
}

func extractTXT(data []byte) (string, error) {
	return string(data), nil
}
