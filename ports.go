package cosenote

import "context"

// Interfaces consumed by the services. The corpus package provides the
// HTTP-backed implementations; tests substitute fakes.

// PageWriter submits assembled pages to the remote project.
type PageWriter interface {
	// Post creates the page, or overwrites it if it already exists.
	Post(ctx context.Context, page Page) error
	// Update rewrites an existing page. Implementations warn and
	// no-op when the target no longer exists.
	Update(ctx context.Context, page Page) error
	// Exists reports whether a page with the given title is present.
	Exists(ctx context.Context, title string) (bool, error)
}

// PageLister enumerates every page in the project in summary form.
type PageLister interface {
	ListPages(ctx context.Context) ([]PageSummary, error)
}

// PageGetter fetches a single page's full line-exact content. A nil
// result means the page is missing or could not be fetched; a single
// miss never aborts a batch of lookups.
type PageGetter interface {
	GetPage(ctx context.Context, title string) *Page
}

// TitleResolver turns candidate title sets into concrete pages.
type TitleResolver interface {
	// ResolveByTitles fetches each title and returns the subset that
	// exists, in no guaranteed order.
	ResolveByTitles(ctx context.Context, titles []string) []Page
	// SampleByKeyword picks up to n random pages tagged #keyword.
	SampleByKeyword(ctx context.Context, keyword string, n int) ([]Page, error)
}

// Generator is the text-generation capability: one prompt in, one
// block of text out. Summarize and Question apply their own prompt
// framing around the given content; Generate sends the prompt as-is.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Summarize(ctx context.Context, content string) (string, error)
	Question(ctx context.Context, content string) (string, error)
}
