package cosenote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes shared by the service tests.

type fakeWriter struct {
	existing  map[string]bool
	existsErr error
	postErr   error
	posted    []Page
	updated   []Page
}

func (w *fakeWriter) Post(_ context.Context, page Page) error {
	if w.postErr != nil {
		return w.postErr
	}
	w.posted = append(w.posted, page)
	return nil
}

func (w *fakeWriter) Update(_ context.Context, page Page) error {
	w.updated = append(w.updated, page)
	return nil
}

func (w *fakeWriter) Exists(_ context.Context, title string) (bool, error) {
	if w.existsErr != nil {
		return false, w.existsErr
	}
	return w.existing[title], nil
}

type fakeResolver struct {
	pages          map[string]Page
	sampled        []Page
	sampleErr      error
	resolvedTitles []string
	sampleKeyword  string
	sampleSize     int
}

func (r *fakeResolver) ResolveByTitles(_ context.Context, titles []string) []Page {
	r.resolvedTitles = titles
	var pages []Page
	for _, title := range titles {
		if page, ok := r.pages[title]; ok {
			pages = append(pages, page)
		}
	}
	return pages
}

func (r *fakeResolver) SampleByKeyword(_ context.Context, keyword string, n int) ([]Page, error) {
	r.sampleKeyword = keyword
	r.sampleSize = n
	return r.sampled, r.sampleErr
}

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func (g *fakeGenerator) Summarize(_ context.Context, content string) (string, error) {
	g.prompts = append(g.prompts, content)
	return g.text, g.err
}

func (g *fakeGenerator) Question(_ context.Context, content string) (string, error) {
	g.prompts = append(g.prompts, content)
	return g.text, g.err
}

type fakeLister struct {
	summaries []PageSummary
	err       error
}

func (l *fakeLister) ListPages(_ context.Context) ([]PageSummary, error) {
	return l.summaries, l.err
}

type fakeGetter struct {
	pages map[string]Page
}

func (g *fakeGetter) GetPage(_ context.Context, title string) *Page {
	if page, ok := g.pages[title]; ok {
		return &page
	}
	return nil
}

// fixedClock returns a clock pinned to the given date.
func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	}
}

func TestDailyServicePost(t *testing.T) {
	writer := &fakeWriter{}
	service := NewDailyService("myproject", writer).
		WithClock(fixedClock(2026, time.February, 21))

	err := service.Post(context.Background())
	require.NoError(t, err)

	require.Len(t, writer.posted, 1)
	page := writer.posted[0]
	assert.Equal(t, "myproject", page.Project)
	assert.Equal(t, "2026/2/21 (Sat)", page.Title)
	assert.Contains(t, page.Content, "#2026/2/16~2026/2/22")
	assert.Contains(t, page.Content, "#daily")
}

func TestDailyServiceRefusesDuplicate(t *testing.T) {
	writer := &fakeWriter{existing: map[string]bool{"2026/2/21 (Sat)": true}}
	service := NewDailyService("myproject", writer).
		WithClock(fixedClock(2026, time.February, 21))

	err := service.Post(context.Background())
	assert.ErrorIs(t, err, ErrPageExists)
	assert.Empty(t, writer.posted)
}

func TestDailyServiceExistsFailure(t *testing.T) {
	writer := &fakeWriter{existsErr: errors.New("boom")}
	service := NewDailyService("myproject", writer)

	err := service.Post(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPageExists)
}

func TestWeeklyServicePost(t *testing.T) {
	writer := &fakeWriter{}
	resolver := &fakeResolver{pages: map[string]Page{
		"2026/2/20 (Fri)": dailyPage("[**** Wake-up Time]", " 7:00", "[**** Score sleep quality]", " 3"),
		"2026/2/19 (Thu)": dailyPage("[**** Wake-up Time]", " 8:00", "[**** Score sleep quality]", " 5"),
	}}
	generator := &fakeGenerator{text: "> a good week"}

	service := NewWeeklyService("myproject", writer, resolver, generator).
		WithClock(fixedClock(2026, time.February, 21))

	err := service.Post(context.Background())
	require.NoError(t, err)

	require.Len(t, writer.posted, 1)
	page := writer.posted[0]
	assert.Equal(t, "2026/2/22 ~ 2026/2/28", page.Title)
	assert.Contains(t, page.Content, " 7.5h")
	assert.Contains(t, page.Content, "\n 4\n")
	assert.Contains(t, page.Content, "> a good week")
	assert.Contains(t, page.Content, "#2026/2/23~2026/3/1")
	assert.Contains(t, page.Content, "#weekly")

	// The resolver was asked for the six lookback titles.
	assert.Equal(t, LookbackTitles(fixedClock(2026, time.February, 21)()), resolver.resolvedTitles)
}

func TestWeeklyServicePostsWithoutSummaryOnGeneratorFailure(t *testing.T) {
	writer := &fakeWriter{}
	resolver := &fakeResolver{pages: map[string]Page{
		"2026/2/20 (Fri)": dailyPage("[**** Wake-up Time]", " 7:00"),
	}}
	generator := &fakeGenerator{err: errors.New("quota exceeded")}

	service := NewWeeklyService("myproject", writer, resolver, generator).
		WithClock(fixedClock(2026, time.February, 21))

	err := service.Post(context.Background())
	require.NoError(t, err)

	require.Len(t, writer.posted, 1)
	assert.Contains(t, writer.posted[0].Content, "[**** Summary]\n#")
}

func TestWeeklyServiceRefusesDuplicate(t *testing.T) {
	writer := &fakeWriter{existing: map[string]bool{"2026/2/22 ~ 2026/2/28": true}}
	service := NewWeeklyService("myproject", writer, &fakeResolver{}, nil).
		WithClock(fixedClock(2026, time.February, 21))

	err := service.Post(context.Background())
	assert.ErrorIs(t, err, ErrPageExists)
	assert.Empty(t, writer.posted)
}

func TestTagWIPService(t *testing.T) {
	lister := &fakeLister{summaries: []PageSummary{
		{Title: "full page", LinesCount: 12},
		{Title: "empty draft", LinesCount: 1},
		{Title: "already tagged", LinesCount: 2},
		{Title: "short but real", LinesCount: 2},
		{Title: "vanished", LinesCount: 1},
	}}
	getter := &fakeGetter{pages: map[string]Page{
		"empty draft":    ReconstructPageFromLines("p", "empty draft", []string{"empty draft"}),
		"already tagged": ReconstructPageFromLines("p", "already tagged", []string{"already tagged", "#WIP"}),
		"short but real": ReconstructPageFromLines("p", "short but real", []string{"short but real", "actual text"}),
	}}
	writer := &fakeWriter{}

	service := NewTagWIPService(lister, getter, writer)
	err := service.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, writer.posted, 1)
	page := writer.posted[0]
	assert.Equal(t, "empty draft", page.Title)
	assert.Equal(t, "\n#WIP", page.Content)
}

func TestTagWIPServiceSkipsPageWhoseBodyIsTheTag(t *testing.T) {
	// A page whose only body line is the tag counts as non-empty, so
	// it is never tagged twice.
	lister := &fakeLister{summaries: []PageSummary{{Title: "tagged", LinesCount: 2}}}
	getter := &fakeGetter{pages: map[string]Page{
		"tagged": ReconstructPageFromLines("p", "tagged", []string{"tagged", "", "#WIP"}),
	}}
	writer := &fakeWriter{}

	service := NewTagWIPService(lister, getter, writer)
	require.NoError(t, service.Run(context.Background()))
	assert.Empty(t, writer.posted)
}

func TestTagWIPServiceListFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("remote returned status 503")}
	service := NewTagWIPService(lister, &fakeGetter{}, &fakeWriter{})

	err := service.Run(context.Background())
	assert.Error(t, err)
}

func TestQuestionService(t *testing.T) {
	resolver := &fakeResolver{sampled: []Page{
		NewPage("p", "Phrasal Verbs", "look up\n#English"),
		NewPage("p", "Idioms", "break a leg\n#English"),
	}}
	generator := &fakeGenerator{text: "1. ..."}

	service := NewQuestionService(resolver, generator)
	question, err := service.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1. ...", question)

	assert.Equal(t, "English", resolver.sampleKeyword)
	assert.Equal(t, 3, resolver.sampleSize)

	require.Len(t, generator.prompts, 1)
	prompt := generator.prompts[0]
	assert.Contains(t, prompt, "Title: Phrasal Verbs\nContent:\nlook up")
	assert.Contains(t, prompt, "\n\n---\n\n")
}

func TestQuestionServicePropagatesSampleFailure(t *testing.T) {
	resolver := &fakeResolver{sampleErr: fmt.Errorf("%w: %q", ErrNoMatchingPages, "English")}
	service := NewQuestionService(resolver, &fakeGenerator{})

	_, err := service.Generate(context.Background())
	assert.ErrorIs(t, err, ErrNoMatchingPages)
}

func TestSummarizeService(t *testing.T) {
	resolver := &fakeResolver{pages: map[string]Page{
		"2026/2/20 (Fri)": ReconstructPageFromLines("p", "2026/2/20 (Fri)", []string{"2026/2/20 (Fri)", "ran 5k"}),
	}}
	generator := &fakeGenerator{text: "a fine week"}

	service := NewSummarizeService(resolver, generator).
		WithClock(fixedClock(2026, time.February, 21))

	summary, err := service.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a fine week", summary)

	require.Len(t, generator.prompts, 1)
	assert.True(t, strings.HasPrefix(generator.prompts[0], "Please summarize the following daily notes:\n\n"))
	assert.Contains(t, generator.prompts[0], "ran 5k")
}

func TestSummarizeServiceNoPages(t *testing.T) {
	service := NewSummarizeService(&fakeResolver{}, &fakeGenerator{}).
		WithClock(fixedClock(2026, time.February, 21))

	_, err := service.Summarize(context.Background())
	assert.ErrorIs(t, err, ErrNoResolvedPages)
}
