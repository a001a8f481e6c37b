package cosenote

import (
	"context"
	"fmt"
	"log"
	"time"
)

// SummarizeService condenses the previous six daily pages into one
// piece of text via the generator.
type SummarizeService struct {
	resolver  TitleResolver
	generator Generator
	now       func() time.Time
}

// NewSummarizeService creates a summarize service.
func NewSummarizeService(resolver TitleResolver, generator Generator) *SummarizeService {
	return &SummarizeService{
		resolver:  resolver,
		generator: generator,
		now:       time.Now,
	}
}

// WithClock overrides the service's notion of the current time.
func (s *SummarizeService) WithClock(now func() time.Time) *SummarizeService {
	s.now = now
	return s
}

// Summarize resolves the lookback daily pages and returns the
// generated summary of their content.
func (s *SummarizeService) Summarize(ctx context.Context) (string, error) {
	titles := LookbackTitles(s.now())
	pages := s.resolver.ResolveByTitles(ctx, titles)
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: no daily pages in %v", ErrNoResolvedPages, titles)
	}

	log.Printf("INFO: Summarizing %d daily pages", len(pages))
	prompt := "Please summarize the following daily notes:\n\n" + joinPageLines(pages)
	summary, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	return summary, nil
}
