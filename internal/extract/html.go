// ABOUTME: HTML to visible text conversion for webpage uploads
// ABOUTME: Drops non-content elements and collapses whitespace
package extract

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func htmlToText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " "), nil
}
