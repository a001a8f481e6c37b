package cosenote

import (
	"strconv"
	"strings"
)

// Extraction of the hand-filled numbers from daily pages. The daily
// template reserves a heading for each value; whatever the author
// wrote on the lines below it is the value. Pages where the section is
// blank or unparseable simply don't contribute to the average.

const (
	wakeUpHeading       = "[**** Wake-up Time]"
	sleepQualityHeading = "[**** Score sleep quality]"
)

// sectionValue returns the first non-empty line under the given
// heading, stopping at the next heading.
func sectionValue(lines []string, heading string) (string, bool) {
	inSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == heading {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.HasPrefix(trimmed, "[****") {
			return "", false
		}
		if trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}

// ParseWakeUpHour extracts the wake-up time from a daily page as
// fractional hours. Accepts "7:30" clock notation or a bare number.
func ParseWakeUpHour(page Page) (float64, bool) {
	raw, ok := sectionValue(page.Lines, wakeUpHeading)
	if !ok {
		return 0, false
	}
	if h, m, found := strings.Cut(raw, ":"); found {
		hours, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return 0, false
		}
		minutes, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
		if err != nil || minutes < 0 || minutes >= 60 {
			return 0, false
		}
		return hours + minutes/60, true
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return hours, true
}

// ParseSleepQuality extracts the sleep quality score from a daily page.
func ParseSleepQuality(page Page) (float64, bool) {
	raw, ok := sectionValue(page.Lines, sleepQualityHeading)
	if !ok {
		return 0, false
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

// AverageWakeUpTime returns the mean wake-up hour across the pages
// that carry a parseable value, or 0 when none do.
func AverageWakeUpTime(pages []Page) float64 {
	return average(pages, ParseWakeUpHour)
}

// AverageSleepQuality returns the mean sleep quality score across the
// pages that carry a parseable value, or 0 when none do.
func AverageSleepQuality(pages []Page) float64 {
	return average(pages, ParseSleepQuality)
}

func average(pages []Page, extract func(Page) (float64, bool)) float64 {
	var sum float64
	var n int
	for _, page := range pages {
		if v, ok := extract(page); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
