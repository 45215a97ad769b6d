// Package ingestion pulls plain text out of uploaded résumé files so the
// match estimator has something to work with. Extraction is best-effort: the
// caller records a degraded outcome on failure and the upload still succeeds.
package ingestion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// MinExtractedTextLength guards against extractions that technically
	// succeed but produce nothing usable.
	MinExtractedTextLength = 50

	binarySampleSize = 1000
	binaryThreshold  = 0.3
)

// ExtractText extracts text from a PDF or plain-text résumé.
func ExtractText(filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", "":
		text := string(content)
		if IsBinaryData(text) {
			return "", fmt.Errorf("file %q looks binary, not plain text", filename)
		}
		return strings.TrimSpace(text), nil
	case ".pdf":
		return extractPDF(filename, content)
	default:
		return "", fmt.Errorf("unsupported resume file type: %s", ext)
	}
}

// extractPDF shells out to pdftotext (poppler-utils), reading from a temp
// file and writing to stdout.
func extractPDF(filename string, content []byte) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	cmd := exec.Command("pdftotext", "-layout", tmp.Name(), "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdf extraction requires 'pdftotext' (install poppler-utils): %w", err)
	}

	text := strings.TrimSpace(string(output))
	if len(text) < MinExtractedTextLength {
		return "", fmt.Errorf("extracted text too short, likely failed extraction of %q", filename)
	}
	return text, nil
}

// IsBinaryData reports whether content looks like a binary blob (PDF/ZIP
// magic numbers or a high proportion of non-printable bytes).
func IsBinaryData(content string) bool {
	if len(content) == 0 {
		return false
	}

	if strings.HasPrefix(content, "%PDF-") {
		return true
	}
	if len(content) >= 2 && content[:2] == "PK" {
		return true
	}

	sampleSize := binarySampleSize
	if len(content) < sampleSize {
		sampleSize = len(content)
	}
	nonPrintable := 0
	for i := 0; i < sampleSize; i++ {
		ch := content[i]
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(sampleSize) > binaryThreshold
}
