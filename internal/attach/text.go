// Package attach recovers plain text from email attachments: text-bearing
// PDFs directly, raster images through an external tesseract binary, and
// plain-text files as-is. Failures yield an empty string to the caller; a
// broken attachment never sinks the message it rode in on.
package attach

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/adewale-s/po-intake/constants"
)

type Extractor struct {
	TesseractBin string
	Runner       Runner
	Log          *slog.Logger
}

func NewExtractor(tesseractBin string, log *slog.Logger) *Extractor {
	if tesseractBin == "" {
		tesseractBin = "tesseract"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{TesseractBin: tesseractBin, Runner: execRunner{}, Log: log}
}

// Text returns the recoverable plain text of one attachment. Unsupported
// extensions produce an empty string and no error.
func (e *Extractor) Text(ctx context.Context, path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return "", nil
	}
	switch ext {
	case "txt", "eml":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "pdf":
		return pdfText(path)
	default: // png, jpg, jpeg, tiff
		return e.ocrImage(ctx, path)
	}
}

func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Extractor) ocrImage(ctx context.Context, path string) (string, error) {
	stdout, _, err := e.Runner.Run(ctx, e.TesseractBin, path, "stdout")
	if err != nil {
		e.Log.Warn("tesseract failed", "path", path, "error", err)
		return "", err
	}
	return string(stdout), nil
}
