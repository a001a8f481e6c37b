package cosenote

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DailyService posts the daily journal page: the template body plus a
// back-link to the containing week's report.
type DailyService struct {
	project string
	writer  PageWriter
	now     func() time.Time
}

// NewDailyService creates a daily service for the given project.
func NewDailyService(project string, writer PageWriter) *DailyService {
	return &DailyService{
		project: project,
		writer:  writer,
		now:     time.Now,
	}
}

// WithClock overrides the service's notion of the current time.
func (s *DailyService) WithClock(now func() time.Time) *DailyService {
	s.now = now
	return s
}

// Post assembles and submits today's page. Posting is refused with
// ErrPageExists when a page with today's title is already present, so
// repeated invocations on the same day stay idempotent.
func (s *DailyService) Post(ctx context.Context) error {
	today := s.now()
	title := DailyTitle(today)
	content := BuildDaily(CurrentWeekLinkRange(today))
	page := NewPage(s.project, title, content)

	exists, err := s.writer.Exists(ctx, title)
	if err != nil {
		return fmt.Errorf("failed to check for existing page: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrPageExists, title)
	}

	if err := s.writer.Post(ctx, page); err != nil {
		return fmt.Errorf("failed to post daily page: %w", err)
	}

	log.Printf("INFO: Posted daily page %q", title)
	return nil
}
