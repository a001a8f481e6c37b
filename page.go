package cosenote

import "strings"

// Page represents a single page in a Scrapbox project. The title is the
// page's natural key: two pages with the same project and title are the
// same logical page regardless of content staleness. Pages are values;
// WithContent returns a new Page rather than mutating the receiver.
type Page struct {
	Project string   `json:"project"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Lines   []string `json:"lines,omitempty"`
}

// PageSummary is the lightweight representation returned by the bulk
// listing endpoint. It carries just enough to decide whether a full
// fetch is worthwhile.
type PageSummary struct {
	Title      string `json:"title"`
	LinesCount int    `json:"linesCount"`
}

// NewPage creates a locally authored page. Lines is left nil, meaning
// the content is authoritative rather than line-exact.
func NewPage(project, title, content string) Page {
	return Page{
		Project: project,
		Title:   title,
		Content: content,
	}
}

// ReconstructPage rebuilds a page retrieved from the remote corpus.
func ReconstructPage(project, title, content string, lines []string) Page {
	return Page{
		Project: project,
		Title:   title,
		Content: content,
		Lines:   lines,
	}
}

// ReconstructPageFromLines rebuilds a page from its raw line list. The
// content is derived by newline-joining the lines, preserving the
// invariant that content and lines never disagree.
func ReconstructPageFromLines(project, title string, lines []string) Page {
	return Page{
		Project: project,
		Title:   title,
		Content: strings.Join(lines, "\n"),
		Lines:   lines,
	}
}

// WithContent returns a new page with the given content, keeping the
// project/title identity of the receiver. When lines is nil the
// receiver's lines are dropped as well, since they would no longer
// match the new content.
func (p Page) WithContent(content string, lines []string) Page {
	return Page{
		Project: p.Project,
		Title:   p.Title,
		Content: content,
		Lines:   lines,
	}
}

// BodyLines returns the trimmed, non-empty lines after the title line.
// A page whose body lines are empty holds nothing but its title.
func (p Page) BodyLines() []string {
	if len(p.Lines) == 0 {
		return nil
	}
	var body []string
	for _, line := range p.Lines[1:] {
		line = strings.TrimSpace(line)
		if line != "" {
			body = append(body, line)
		}
	}
	return body
}

// HasTag reports whether the page content mentions the given hashtag.
func (p Page) HasTag(tag string) bool {
	return strings.Contains(p.Content, "#"+tag)
}
