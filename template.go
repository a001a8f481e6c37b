package cosenote

import (
	"strconv"
	"strings"
)

// Scrapbox markup rendering for the daily and weekly page bodies. The
// section order is fixed; existing pages are looked up by these exact
// strings, so changes here break round trips with the live corpus.

// textFormat selects how a template item is rendered.
type textFormat int

const (
	formatPlain textFormat = iota
	formatMedium
	formatNestedPlain
	formatLink
)

// textItem is one line of a page template.
type textItem struct {
	content string
	format  textFormat
}

// renderTextItems renders template items into the Scrapbox dialect:
// medium headings become bracketed bold lines, links become hashtags,
// nested plain text is indented one level.
func renderTextItems(items []textItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		switch item.format {
		case formatMedium:
			lines = append(lines, "[**** "+item.content+"]")
		case formatNestedPlain:
			lines = append(lines, " "+item.content)
		case formatLink:
			lines = append(lines, "#"+item.content)
		default:
			lines = append(lines, item.content)
		}
	}
	return strings.Join(lines, "\n")
}

// formatNumber renders a float the way the templates expect: no fixed
// precision, trailing zeros dropped (7.5 -> "7.5", 4.0 -> "4").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildDaily composes the daily page body. connectLink is the label of
// the week containing the page, used to back-link the daily entry to
// its weekly report.
func BuildDaily(connectLink string) string {
	return renderTextItems([]textItem{
		{content: "Wake-up Time", format: formatMedium},
		{content: "Today's Tasks", format: formatMedium},
		{content: "https://tatsufumi.backlog.com/board/FAMILY", format: formatNestedPlain},
		{content: "Score sleep quality", format: formatMedium},
		{content: "How was the day?", format: formatMedium},
		{content: connectLink, format: formatLink},
		{content: "daily", format: formatLink},
	})
}

// BuildWeekly composes the weekly report body. connectLink is the label
// of the upcoming week, linking the report forward. summary may be
// empty, in which case the Summary heading is left without a body line.
func BuildWeekly(connectLink string, avgWakeUpTime, avgSleepQuality float64, summary string) string {
	items := []textItem{
		{content: "Last week's average wake-up time", format: formatMedium},
		{content: " " + formatNumber(avgWakeUpTime) + "h", format: formatPlain},
		{content: "Last week's average sleep quality", format: formatMedium},
		{content: " " + formatNumber(avgSleepQuality), format: formatPlain},
		{content: "Goals", format: formatMedium},
		{content: "Try something new", format: formatMedium},
		{content: "How was the week", format: formatMedium},
		{content: "Summary", format: formatMedium},
	}
	if summary != "" {
		items = append(items, textItem{content: summary, format: formatPlain})
	}
	items = append(items,
		textItem{content: connectLink, format: formatLink},
		textItem{content: "weekly", format: formatLink},
	)
	return renderTextItems(items)
}
