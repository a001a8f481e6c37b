package cosenote

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// WeeklyService posts the weekly report. The report is filed under the
// upcoming week's label, summarizes the six daily pages preceding the
// reference date, and optionally carries an AI-written summary.
type WeeklyService struct {
	project   string
	writer    PageWriter
	resolver  TitleResolver
	generator Generator // nil disables the summary section body
	now       func() time.Time
}

// NewWeeklyService creates a weekly service for the given project.
// generator may be nil, in which case the report is posted without a
// generated summary.
func NewWeeklyService(project string, writer PageWriter, resolver TitleResolver, generator Generator) *WeeklyService {
	return &WeeklyService{
		project:   project,
		writer:    writer,
		resolver:  resolver,
		generator: generator,
		now:       time.Now,
	}
}

// WithClock overrides the service's notion of the current time.
func (s *WeeklyService) WithClock(now func() time.Time) *WeeklyService {
	s.now = now
	return s
}

// Post assembles and submits the weekly report, refusing duplicates.
func (s *WeeklyService) Post(ctx context.Context) error {
	today := s.now()
	title := NextWeekReportRange(today)
	connectLink := NextWeekLinkRange(today)

	pages := s.resolver.ResolveByTitles(ctx, LookbackTitles(today))
	log.Printf("INFO: Resolved %d of 6 daily pages for the weekly report", len(pages))

	avgWakeUp := AverageWakeUpTime(pages)
	avgSleep := AverageSleepQuality(pages)

	summary := ""
	if s.generator != nil && len(pages) > 0 {
		text, err := s.generator.Summarize(ctx, joinPageLines(pages))
		if err != nil {
			// The report is still worth posting without the summary.
			log.Printf("ERROR: Summary generation failed: %v", err)
		} else {
			summary = text
		}
	}

	content := BuildWeekly(connectLink, avgWakeUp, avgSleep, summary)
	page := NewPage(s.project, title, content)

	exists, err := s.writer.Exists(ctx, title)
	if err != nil {
		return fmt.Errorf("failed to check for existing page: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrPageExists, title)
	}

	if err := s.writer.Post(ctx, page); err != nil {
		return fmt.Errorf("failed to post weekly page: %w", err)
	}

	log.Printf("INFO: Posted weekly page %q", title)
	return nil
}

// joinPageLines concatenates the resolved pages' raw lines, one blank
// line between pages, for use as generation input.
func joinPageLines(pages []Page) string {
	blocks := make([]string, 0, len(pages))
	for _, page := range pages {
		if len(page.Lines) > 0 {
			blocks = append(blocks, strings.Join(page.Lines, "\n"))
		} else {
			blocks = append(blocks, page.Content)
		}
	}
	return strings.Join(blocks, "\n\n")
}
