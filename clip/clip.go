// Package clip captures a web article as a page in the note project.
package clip

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tfkhs/cosenote"
)

// maxParagraphs caps how much article body one clip carries.
const maxParagraphs = 20

// Clipper fetches article pages and converts them into note pages.
type Clipper struct {
	project    string
	httpClient *http.Client
}

// NewClipper creates a clipper for the given project.
func NewClipper(project string) *Clipper {
	return &Clipper{
		project: project,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Clip fetches the article at the given URL and returns it as a page:
// the extracted title becomes the page title, each paragraph becomes a
// quoted line, and the source URL is kept as a link.
func (c *Clipper) Clip(ctx context.Context, articleURL string) (cosenote.Page, error) {
	doc, err := c.fetchHTML(ctx, articleURL)
	if err != nil {
		return cosenote.Page{}, err
	}

	title := extractTitle(doc)
	if title == "" {
		return cosenote.Page{}, fmt.Errorf("no title found at %s", articleURL)
	}

	lines := []string{title}
	for _, paragraph := range extractParagraphs(doc) {
		lines = append(lines, "> "+paragraph)
	}
	lines = append(lines, "", "source: "+articleURL, "#clip")

	return cosenote.ReconstructPageFromLines(c.project, title, lines), nil
}

// fetchHTML fetches and parses the document at the given URL.
func (c *Clipper) fetchHTML(ctx context.Context, articleURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "cosenote/1.0 (note-taking web clipper)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned status %d for %s", resp.StatusCode, articleURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// extractTitle prefers the Open Graph title over the document title.
func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractParagraphs pulls the article body paragraphs, preferring
// semantic containers over the whole document.
func extractParagraphs(doc *goquery.Document) []string {
	selection := doc.Find("article p")
	if selection.Length() == 0 {
		selection = doc.Find("main p")
	}
	if selection.Length() == 0 {
		selection = doc.Find("p")
	}

	var paragraphs []string
	selection.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxParagraphs
	})
	return paragraphs
}
