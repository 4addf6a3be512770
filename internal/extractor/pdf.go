// Package extractor loads transcript text from uploaded files. Plain-text
// exports pass through untouched; PDF exports go through the pdf library
// with an external pdftotext fallback.
package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText reads a PDF transcript export and returns its text with
// page boundaries joined by newlines. The structured library is tried
// first; if it fails or produces unreadable output, the external pdftotext
// command (poppler-utils) is used as a last resort.
func ExtractPDFText(filePath string) (string, error) {
	text, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(text) {
		return text, nil
	}

	text, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(text) {
		return text, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("PDF text extraction failed: %v; the file may be image-based or use custom font encodings", libErr)
	}
	return "", fmt.Errorf("no readable text could be extracted from PDF; re-export the transcript as plain text and try again")
}

// extractWithLibrary walks every page with GetTextByRow, falling back to
// GetPlainText when row extraction yields nothing.
func extractWithLibrary(filePath string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return "", openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}

	if len(pages) == 0 {
		plain, plainErr := r.GetPlainText()
		if plainErr != nil {
			return "", plainErr
		}
		buf := new(strings.Builder)
		if _, copyErr := io.Copy(buf, plain); copyErr != nil {
			return "", copyErr
		}
		return buf.String(), nil
	}

	return strings.Join(pages, "\n"), nil
}

// extractWithPdftotext shells out to pdftotext from poppler-utils.
func extractWithPdftotext(filePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %v", err)
	}

	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %v", err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("pdftotext produced no output")
	}
	return text, nil
}

// isReadableText rejects binary garbage from broken font encodings: the
// output must be non-trivial and mostly printable characters.
func isReadableText(text string) bool {
	if len(text) <= 20 {
		return false
	}
	total, readable := 0, 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			readable++
		}
	}
	return float64(readable)/float64(total) > 0.9
}
