// ABOUTME: Text extraction from uploaded files and webpages
// ABOUTME: PDF via ledongthuc/pdf, HTML via goquery, plain text passthrough
package extract

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Extractor turns uploaded sources into raw document text.
type Extractor struct {
	client *http.Client
}

// NewExtractor creates an extractor with a bounded HTTP client for URL
// fetches.
func NewExtractor() *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// ExtractFile extracts text from an uploaded file, choosing the parser by
// extension. Unknown extensions are treated as plain text.
func (e *Extractor) ExtractFile(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(content)
	default:
		if !utf8.Valid(content) {
			return "", fmt.Errorf("file %s is not valid UTF-8 text", filename)
		}
		return string(content), nil
	}
}

// ExtractURL fetches the page and returns its visible text.
func (e *Extractor) ExtractURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	text, err := htmlToText(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}
	return text, nil
}
