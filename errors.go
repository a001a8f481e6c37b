package cosenote

import "errors"

// Business-rule failures surfaced by the services. Transport-level
// failures are wrapped errors from the corpus adapter; these sentinels
// mark the cases where the remote answered but the answer was unusable.
var (
	// ErrPageExists means the duplicate guard refused to post over an
	// existing page. One page per title per day or week.
	ErrPageExists = errors.New("page already exists")

	// ErrNoMatchingPages means a keyword search returned no pages
	// carrying the expected tag.
	ErrNoMatchingPages = errors.New("no pages match keyword")

	// ErrNoResolvedPages means none of the sampled titles could be
	// fetched from the corpus.
	ErrNoResolvedPages = errors.New("no sampled pages resolved")
)
