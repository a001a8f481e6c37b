package cosenote

import (
	"context"
	"fmt"
	"log"
)

// TagWIPService sweeps the whole project for stale empty drafts and
// tags them #WIP. A page is a candidate when its summary reports at
// most two lines; candidates are then fetched in full, because the
// summary's line count includes blank lines and the title line and can
// overstate how empty the page really is.
type TagWIPService struct {
	lister PageLister
	getter PageGetter
	writer PageWriter
}

// NewTagWIPService creates a tagging service over the given corpus
// access points.
func NewTagWIPService(lister PageLister, getter PageGetter, writer PageWriter) *TagWIPService {
	return &TagWIPService{
		lister: lister,
		getter: getter,
		writer: writer,
	}
}

// Run enumerates the project and tags every empty untagged page.
// Individual page misses are skipped; only the bulk enumeration and
// the write path can fail the run.
func (s *TagWIPService) Run(ctx context.Context) error {
	summaries, err := s.lister.ListPages(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}
	if len(summaries) == 0 {
		log.Println("INFO: No pages found")
		return nil
	}

	total := len(summaries)
	log.Printf("INFO: Found %d pages, scanning for empty drafts", total)

	tagged := 0
	for i, summary := range summaries {
		if summary.LinesCount > 2 {
			continue
		}
		log.Printf("INFO: [%d/%d] Checking %q", i+1, total, summary.Title)

		page := s.getter.GetPage(ctx, summary.Title)
		if page == nil {
			continue
		}
		if len(page.BodyLines()) > 0 {
			log.Printf("INFO: %q is not empty, skipping", summary.Title)
			continue
		}
		if page.HasTag("WIP") {
			log.Printf("INFO: %q already tagged, skipping", summary.Title)
			continue
		}

		updated := page.WithContent("\n#WIP", nil)
		if err := s.writer.Post(ctx, updated); err != nil {
			return fmt.Errorf("failed to tag %q: %w", summary.Title, err)
		}
		tagged++
		log.Printf("INFO: Tagged %q", summary.Title)
	}

	log.Printf("INFO: Tagging finished, %d pages tagged", tagged)
	return nil
}
