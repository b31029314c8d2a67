package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// PDFText extracts the text layer of a PDF via pdftotext. The binary
// must be on PATH; scanned PDFs without a text layer come back empty
// and surface to the operator as "no questions found".
func PDFText(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, "pdftotext", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return string(out), nil
}

// PDFTextFromBytes spools uploaded PDF bytes to a temp file for
// pdftotext, which cannot read stdin for all PDF variants.
func PDFTextFromBytes(ctx context.Context, data []byte) (string, error) {
	f, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return PDFText(ctx, f.Name())
}
