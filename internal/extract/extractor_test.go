// ABOUTME: Tests for text extraction
// ABOUTME: Covers plain text, HTML stripping, and URL fetching via httptest
package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExtractFile_PlainText(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractFile("book.txt", []byte("once upon a time"))
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if got != "once upon a time" {
		t.Errorf("ExtractFile() = %q, want passthrough", got)
	}
}

func TestExtractFile_InvalidUTF8(t *testing.T) {
	e := NewExtractor()
	if _, err := e.ExtractFile("book.txt", []byte{0xff, 0xfe, 0x00}); err == nil {
		t.Error("ExtractFile() on binary garbage succeeded, want error")
	}
}

func TestExtractFile_BadPDF(t *testing.T) {
	e := NewExtractor()
	if _, err := e.ExtractFile("book.pdf", []byte("not a pdf at all")); err == nil {
		t.Error("ExtractFile() on invalid PDF succeeded, want error")
	}
}

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>p {color: red}</style></head>
<body>
<script>alert("no")</script>
<nav>menu items</nav>
<p>It was  the best
of times.</p>
<footer>copyright</footer>
</body></html>`

	got, err := htmlToText(strings.NewReader(html))
	if err != nil {
		t.Fatalf("htmlToText() error = %v", err)
	}
	if got != "It was the best of times." {
		t.Errorf("htmlToText() = %q, want %q", got, "It was the best of times.")
	}
}

func TestExtractURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>hello from the web</p></body></html>"))
	}))
	defer srv.Close()

	e := NewExtractor()
	got, err := e.ExtractURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ExtractURL() error = %v", err)
	}
	if got != "hello from the web" {
		t.Errorf("ExtractURL() = %q, want %q", got, "hello from the web")
	}
}

func TestExtractURL_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	e := NewExtractor()
	if _, err := e.ExtractURL(context.Background(), srv.URL); err == nil {
		t.Error("ExtractURL() on 404 succeeded, want error")
	}
}
