package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var slideNumberRe = regexp.MustCompile(`slide(\d+)\.xml$`)

// extractPPTX extracts slide text from a presentation package. The slide
// parser works on a filesystem path, so the buffer is first written to a
// uniquely named temporary file which is removed on every exit path.
func extractPPTX(data []byte) (string, error) {
	tempPath := filepath.Join(os.TempDir(), uuid.New().String()+".pptx")
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return "", fmt.Errorf("write temporary pptx: %w", err)
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			log.Printf("WARN: Failed to remove temporary file %s: %v", tempPath, err)
		}
	}()

	return extractPPTXFile(tempPath)
}

// extractPPTXFile reads ppt/slides/slideN.xml entries in slide order and
// joins each slide's text with a blank line.
func extractPPTXFile(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("pptx is not a valid zip container: %w", err)
	}
	defer zr.Close()

	var slides []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/") && slideNumberRe.MatchString(f.Name) {
			slides = append(slides, f)
		}
	}
	if len(slides) == 0 {
		return "", errors.New("pptx contains no slides")
	}

	sort.Slice(slides, func(i, j int) bool {
		return slideNumber(slides[i].Name) < slideNumber(slides[j].Name)
	})

	var parts []string
	for _, slide := range slides {
		rc, err := slide.Open()
		if err != nil {
			return "", fmt.Errorf("pptx open %s: %w", slide.Name, err)
		}
		text, err := slideText(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("pptx parse %s: %w", slide.Name, err)
		}
		parts = append(parts, text)
	}

	text := strings.Join(parts, "\n\n")
	if strings.TrimSpace(text) == "" {
		return "", errors.New("pptx contains no text")
	}
	return text, nil
}

// slideText collects the <a:t> runs of one DrawingML slide.
func slideText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var out strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "t" {
			continue
		}
		var run string
		if err := dec.DecodeElement(&run, &el); err != nil {
			return "", err
		}
		if run != "" {
			if out.Len() > 0 {
				out.WriteString(" ")
			}
			out.WriteString(run)
		}
	}
	return out.String(), nil
}

func slideNumber(name string) int {
	m := slideNumberRe.FindStringSubmatch(name)
	if len(m) < 2 {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
