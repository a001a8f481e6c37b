package corpus

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/tfkhs/cosenote"
)

// defaultSiteURL is the public Scrapbox site root, where the edit
// endpoint lives (as opposed to the API root used for reads).
const defaultSiteURL = "https://scrapbox.io"

// sessionCookie is the Scrapbox session cookie name. The session
// credential is opaque to this package; it is passed through as-is.
const sessionCookie = "connect.sid"

// WriterConfig holds optional writer settings.
type WriterConfig struct {
	// SiteURL overrides the edit endpoint root, mainly for tests.
	SiteURL string
	// APIBaseURL overrides the API root used for existence probes.
	APIBaseURL string
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// Writer is the write side of the corpus: it submits assembled pages
// through the edit endpoint using the caller's session credential.
type Writer struct {
	project    string
	sessionID  string
	siteURL    string
	apiBaseURL string
	httpClient *http.Client
}

// NewWriter creates a corpus writer for the given project and session.
// config may be nil for defaults.
func NewWriter(project, sessionID string, config *WriterConfig) *Writer {
	w := &Writer{
		project:    project,
		sessionID:  sessionID,
		siteURL:    defaultSiteURL,
		apiBaseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	if config != nil {
		if config.SiteURL != "" {
			w.siteURL = config.SiteURL
		}
		if config.APIBaseURL != "" {
			w.apiBaseURL = config.APIBaseURL
		}
		if config.HTTPClient != nil {
			w.httpClient = config.HTTPClient
		}
	}
	return w
}

// Post submits the page body through the edit endpoint. Scrapbox
// creates the page when it is new and appends when it already exists;
// the one-post-per-title guard belongs to the services, not here.
func (w *Writer) Post(ctx context.Context, page cosenote.Page) error {
	if err := w.submit(ctx, page); err != nil {
		return fmt.Errorf("failed to post page %q: %w", page.Title, err)
	}
	log.Printf("INFO: Submitted page %q to project %q", page.Title, page.Project)
	return nil
}

// Update rewrites an existing page. When the target no longer exists
// the update is skipped with a warning rather than creating a stray
// page.
func (w *Writer) Update(ctx context.Context, page cosenote.Page) error {
	exists, err := w.Exists(ctx, page.Title)
	if err != nil {
		return fmt.Errorf("failed to check page %q before update: %w", page.Title, err)
	}
	if !exists {
		log.Printf("WARN: Page %q no longer exists, skipping update", page.Title)
		return nil
	}
	if err := w.submit(ctx, page); err != nil {
		return fmt.Errorf("failed to update page %q: %w", page.Title, err)
	}
	log.Printf("INFO: Updated page %q in project %q", page.Title, page.Project)
	return nil
}

// Exists reports whether a page with the given title is present in the
// project.
func (w *Writer) Exists(ctx context.Context, title string) (bool, error) {
	reqURL := fmt.Sprintf("%s/pages/%s/%s", w.apiBaseURL, w.project, url.PathEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, &RemoteError{Status: resp.StatusCode, URL: reqURL}
	}
}

// submit issues the edit request for the page with the session cookie
// attached.
func (w *Writer) submit(ctx context.Context, page cosenote.Page) error {
	reqURL := fmt.Sprintf("%s/%s/%s?body=%s",
		w.siteURL,
		page.Project,
		url.PathEscape(page.Title),
		url.QueryEscape(page.Content),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: w.sessionID})

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &RemoteError{Status: resp.StatusCode, URL: reqURL}
	}
	return nil
}
