package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromFile loads transcript text from a file on disk. PDF exports are run
// through text extraction; anything else is read as UTF-8 text.
func FromFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ExtractPDFText(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading transcript %q: %w", path, err)
	}
	return string(data), nil
}

// FromUpload loads transcript text from an uploaded file's bytes. PDF
// uploads are staged to a temp file for extraction since the PDF reader
// needs random access.
func FromUpload(filename string, data []byte) (string, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return string(data), nil
	}

	tmp, err := os.CreateTemp("", "transcript-*.pdf")
	if err != nil {
		return "", fmt.Errorf("staging upload: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("staging upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("staging upload: %w", err)
	}

	return ExtractPDFText(tmp.Name())
}
