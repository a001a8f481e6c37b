package corpus

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/tfkhs/cosenote"
)

// defaultConcurrency caps how many page fetches a resolver keeps in
// flight at once.
const defaultConcurrency = 5

// Fetcher is the slice of the client the resolver needs.
type Fetcher interface {
	GetPage(ctx context.Context, title string) *cosenote.Page
	SearchPages(ctx context.Context, keyword string) ([]cosenote.Page, error)
}

// ResolverConfig holds optional resolver settings.
type ResolverConfig struct {
	// Concurrency bounds the fan-out of ResolveByTitles.
	Concurrency int
	// Rand is the sampling source. Tests inject a seeded source;
	// otherwise sampling is deliberately nondeterministic.
	Rand *rand.Rand
}

// Resolver turns candidate title sets into concrete pages.
type Resolver struct {
	fetcher     Fetcher
	concurrency int
	rng         *rand.Rand
}

// NewResolver creates a resolver over the given fetcher. config may be
// nil for defaults.
func NewResolver(fetcher Fetcher, config *ResolverConfig) *Resolver {
	r := &Resolver{
		fetcher:     fetcher,
		concurrency: defaultConcurrency,
	}
	if config != nil {
		if config.Concurrency > 0 {
			r.concurrency = config.Concurrency
		}
		r.rng = config.Rand
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

// ResolveByTitles fetches each title and returns the pages that exist.
// Fetches run in parallel under a semaphore; results arrive in
// completion order, so callers must not rely on ordering. Titles that
// miss are simply left out -- a partial result is a success here.
func (r *Resolver) ResolveByTitles(ctx context.Context, titles []string) []cosenote.Page {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		pages []cosenote.Page
	)
	semaphore := make(chan struct{}, r.concurrency)

	for _, title := range titles {
		select {
		case <-ctx.Done():
			wg.Wait()
			return pages
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(title string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			page := r.fetcher.GetPage(ctx, title)
			if page == nil {
				return
			}
			mu.Lock()
			pages = append(pages, *page)
			mu.Unlock()
		}(title)
	}

	wg.Wait()
	return pages
}

// SampleByKeyword searches for pages tagged #keyword, samples up to n
// of them without replacement, and resolves the sampled titles to full
// pages. Sampling is shuffle-then-take and makes no uniformity or
// reproducibility promise beyond what the injected source provides.
func (r *Resolver) SampleByKeyword(ctx context.Context, keyword string, n int) ([]cosenote.Page, error) {
	hits, err := r.fetcher.SearchPages(ctx, keyword)
	if err != nil {
		return nil, err
	}

	var titles []string
	for _, page := range hits {
		if page.HasTag(keyword) {
			titles = append(titles, page.Title)
		}
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: %q", cosenote.ErrNoMatchingPages, keyword)
	}

	r.rng.Shuffle(len(titles), func(i, j int) {
		titles[i], titles[j] = titles[j], titles[i]
	})
	if len(titles) > n {
		titles = titles[:n]
	}

	pages := r.ResolveByTitles(ctx, titles)
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: sampled %v", cosenote.ErrNoResolvedPages, titles)
	}
	return pages, nil
}
