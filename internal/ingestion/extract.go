// Package ingestion turns scraped job-posting HTML into the raw title,
// company, and description text a job target is created from.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Posting is the raw material extracted from one job-posting page.
type Posting struct {
	Title       string
	CompanyName string
	Description string
}

var reWhitespace = regexp.MustCompile(`[ \t]+`)
var reBlankLines = regexp.MustCompile(`\n{3,}`)

// ExtractPosting pulls the role title, company name, and description text
// out of job-posting HTML. Title lookup prefers Open Graph metadata, then
// the first h1, then the document title.
func ExtractPosting(html string) (*Posting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	posting := &Posting{
		Title:       extractTitle(doc),
		CompanyName: extractCompany(doc),
		Description: extractDescription(doc),
	}
	if posting.Title == "" {
		return nil, fmt.Errorf("no role title found in posting HTML")
	}
	return posting, nil
}

func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := strings.TrimSpace(og); title != "" {
			return title
		}
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func extractCompany(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		return strings.TrimSpace(og)
	}
	return ""
}

func extractDescription(doc *goquery.Document) string {
	// Remove noise elements before grabbing body text.
	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner").Remove()

	content := doc.Find(`[class*="job-description"], [class*="description"], main, article`).First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}
	return CleanText(content.Text())
}

// CleanText collapses runs of spaces and blank lines in extracted text.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(reWhitespace.ReplaceAllString(line, " "))
	}
	cleaned := strings.Join(lines, "\n")
	cleaned = reBlankLines.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
