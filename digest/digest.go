// Package digest assembles a reading-list page from RSS/Atom feeds.
// Each run collects the feed entries not yet seen and posts them as a
// dated page in the note project.
package digest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tfkhs/cosenote"
)

// maxItemsPerFeed caps how many entries one feed can contribute to a
// single digest page.
const maxItemsPerFeed = 10

// Entry is one feed item destined for the digest page.
type Entry struct {
	Title string
	URL   string
	Feed  string
}

// Service fetches the configured feeds and posts the digest page.
type Service struct {
	project string
	feeds   []string
	store   *Store
	writer  cosenote.PageWriter
	parser  *gofeed.Parser
	now     func() time.Time
}

// NewService creates a digest service for the given project and feed
// URLs.
func NewService(project string, feeds []string, store *Store, writer cosenote.PageWriter) *Service {
	return &Service{
		project: project,
		feeds:   feeds,
		store:   store,
		writer:  writer,
		parser:  gofeed.NewParser(),
		now:     time.Now,
	}
}

// WithClock overrides the service's notion of the current time.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run fetches every configured feed, collects unseen entries, and
// posts them as today's reading-list page. A feed that fails to fetch
// is logged and skipped; the digest proceeds with the rest. No page is
// posted when nothing new turned up.
func (s *Service) Run(ctx context.Context) error {
	var entries []Entry
	for _, feedURL := range s.feeds {
		feedEntries, err := s.collect(ctx, feedURL)
		if err != nil {
			log.Printf("ERROR: Failed to fetch feed %s: %v", feedURL, err)
			continue
		}
		entries = append(entries, feedEntries...)
	}

	if len(entries) == 0 {
		log.Println("INFO: No new feed items, skipping digest")
		return nil
	}

	page := s.buildPage(entries)
	if err := s.writer.Post(ctx, page); err != nil {
		return fmt.Errorf("failed to post digest page: %w", err)
	}

	for _, entry := range entries {
		if err := s.store.MarkSeen(entry.URL, entry.Title); err != nil {
			return fmt.Errorf("failed to record digest item: %w", err)
		}
	}

	log.Printf("INFO: Posted digest %q with %d items", page.Title, len(entries))
	return nil
}

// collect fetches one feed and returns its unseen entries, newest
// first, capped at maxItemsPerFeed.
func (s *Service) collect(ctx context.Context, feedURL string) ([]Entry, error) {
	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var entries []Entry
	for _, item := range feed.Items {
		if len(entries) >= maxItemsPerFeed {
			break
		}
		if item.Link == "" {
			continue
		}
		seen, err := s.store.Seen(item.Link)
		if err != nil {
			return nil, err
		}
		if seen {
			continue
		}

		title := item.Title
		if title == "" {
			title = "(No title)"
		}
		entries = append(entries, Entry{
			Title: title,
			URL:   item.Link,
			Feed:  feed.Title,
		})
	}
	return entries, nil
}

// buildPage renders the collected entries as a Scrapbox page, one
// external link per line, grouped under their feed name.
func (s *Service) buildPage(entries []Entry) cosenote.Page {
	title := "Reading List " + cosenote.DailyTitle(s.now())

	var lines []string
	currentFeed := ""
	for _, entry := range entries {
		if entry.Feed != currentFeed {
			currentFeed = entry.Feed
			lines = append(lines, "[* "+currentFeed+"]")
		}
		lines = append(lines, fmt.Sprintf(" [%s %s]", entry.Title, entry.URL))
	}
	lines = append(lines, "#reading")

	return cosenote.ReconstructPageFromLines(s.project, title, lines)
}
