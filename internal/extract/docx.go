package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// extractDOCX pulls raw paragraph text out of an Office Open XML
// word-processing package. Only the document body (word/document.xml) is
// read; headers, footers and formatting are ignored.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("docx is not a valid zip container: %w", err)
	}

	doc := findZipFile(zr, "word/document.xml")
	if doc == nil {
		return "", errors.New("docx is missing word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("docx open document part: %w", err)
	}
	defer rc.Close()

	text, err := wordParagraphText(rc)
	if err != nil {
		return "", fmt.Errorf("docx parse document part: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.New("docx contains no text")
	}
	return text, nil
}

// wordParagraphText walks the WordprocessingML token stream, collecting the
// content of <w:t> runs and emitting one line per <w:p> paragraph.
func wordParagraphText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var out strings.Builder
	var para strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				var run string
				if err := dec.DecodeElement(&run, &el); err != nil {
					return "", err
				}
				para.WriteString(run)
			}
		case xml.EndElement:
			if el.Name.Local == "p" && para.Len() > 0 {
				out.WriteString(para.String())
				out.WriteString("\n")
				para.Reset()
			}
		}
	}

	if para.Len() > 0 {
		out.WriteString(para.String())
		out.WriteString("\n")
	}
	return out.String(), nil
}

func findZipFile(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
