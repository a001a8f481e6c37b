// Package corpus talks to the Scrapbox REST API: bulk page listing,
// keyword search, single-page fetch, and the write path used to post
// assembled pages.
package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/tfkhs/cosenote"
)

// defaultBaseURL is the public Scrapbox API root.
const defaultBaseURL = "https://scrapbox.io/api"

// defaultPageLimit is the page size used during bulk enumeration.
const defaultPageLimit = 1000

// RemoteError is a non-success HTTP status from the corpus. During
// bulk enumeration or search it aborts the whole operation; no partial
// result is returned.
type RemoteError struct {
	Status int
	URL    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned status %d for %s", e.Status, e.URL)
}

// ClientConfig holds optional client settings.
type ClientConfig struct {
	// BaseURL overrides the API root, mainly for tests.
	BaseURL string
	// PageLimit overrides the enumeration page size.
	PageLimit int
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// Client is the read side of the corpus: listing, search, and
// single-page fetches for one project.
type Client struct {
	project    string
	baseURL    string
	pageLimit  int
	httpClient *http.Client
}

// NewClient creates a corpus client for the given project. config may
// be nil for defaults.
func NewClient(project string, config *ClientConfig) *Client {
	c := &Client{
		project:   project,
		baseURL:   defaultBaseURL,
		pageLimit: defaultPageLimit,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	if config != nil {
		if config.BaseURL != "" {
			c.baseURL = config.BaseURL
		}
		if config.PageLimit > 0 {
			c.pageLimit = config.PageLimit
		}
		if config.HTTPClient != nil {
			c.httpClient = config.HTTPClient
		}
	}
	return c
}

// listResponse is the shape of the bulk listing endpoint.
type listResponse struct {
	Count int                    `json:"count"`
	Pages []cosenote.PageSummary `json:"pages"`
}

// ListPages enumerates every page in the project in summary form. The
// listing endpoint is cursor-paginated and eventually consistent: the
// reported total can change between requests. The count from the first
// response is treated as authoritative for the whole traversal so a
// moving target cannot keep the loop alive forever. The cursor
// advances by the number of items actually returned, tolerating short
// final pages.
func (c *Client) ListPages(ctx context.Context) ([]cosenote.PageSummary, error) {
	var all []cosenote.PageSummary
	skip := 0
	total := -1

	for {
		reqURL := fmt.Sprintf("%s/pages/%s?skip=%d&limit=%d", c.baseURL, c.project, skip, c.pageLimit)

		var data listResponse
		if err := c.getJSON(ctx, reqURL, &data); err != nil {
			return nil, fmt.Errorf("failed to list pages: %w", err)
		}

		if total < 0 {
			total = data.Count
		}

		all = append(all, data.Pages...)
		skip += len(data.Pages)

		if len(data.Pages) == 0 || skip >= total {
			return all, nil
		}
	}
}

// PageCount returns the project's reported page count.
func (c *Client) PageCount(ctx context.Context) (int, error) {
	reqURL := fmt.Sprintf("%s/pages/%s", c.baseURL, c.project)

	var data listResponse
	if err := c.getJSON(ctx, reqURL, &data); err != nil {
		return 0, fmt.Errorf("failed to fetch page count: %w", err)
	}
	return data.Count, nil
}

// pageResponse is the shape of the single-page endpoint.
type pageResponse struct {
	Lines []struct {
		Text string `json:"text"`
	} `json:"lines"`
}

// GetPage fetches one page's full line-exact content. Missing pages
// and transport failures both resolve to nil: a targeted lookup that
// misses is logged and excluded, never allowed to abort a batch.
func (c *Client) GetPage(ctx context.Context, title string) *cosenote.Page {
	reqURL := fmt.Sprintf("%s/pages/%s/%s", c.baseURL, c.project, url.PathEscape(title))

	var data pageResponse
	if err := c.getJSON(ctx, reqURL, &data); err != nil {
		log.Printf("ERROR: Failed to fetch page %q: %v", title, err)
		return nil
	}

	lines := make([]string, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, line.Text)
	}
	page := cosenote.ReconstructPageFromLines(c.project, title, lines)
	return &page
}

// searchResponse is the shape of the search endpoint.
type searchResponse struct {
	Pages []struct {
		ID    string   `json:"id"`
		Title string   `json:"title"`
		Lines []string `json:"lines"`
	} `json:"pages"`
}

// SearchPages performs a server-side keyword search and returns each
// hit as a full page with its line list. Entries with empty titles are
// malformed and silently dropped.
func (c *Client) SearchPages(ctx context.Context, keyword string) ([]cosenote.Page, error) {
	reqURL := fmt.Sprintf("%s/pages/%s/search/query?q=%s", c.baseURL, c.project, url.QueryEscape(keyword))

	var data searchResponse
	if err := c.getJSON(ctx, reqURL, &data); err != nil {
		return nil, fmt.Errorf("failed to search pages: %w", err)
	}

	pages := make([]cosenote.Page, 0, len(data.Pages))
	for _, hit := range data.Pages {
		if hit.Title == "" {
			continue
		}
		pages = append(pages, cosenote.ReconstructPageFromLines(c.project, hit.Title, hit.Lines))
	}
	return pages, nil
}

// getJSON performs a GET request and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &RemoteError{Status: resp.StatusCode, URL: reqURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
