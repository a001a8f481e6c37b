package cosenote

import (
	"fmt"
	"time"
)

// Date helpers for the weekly cadence. Weeks run Monday through Sunday,
// so a Sunday reference date belongs to the week that started six days
// earlier. All arithmetic happens on calendar dates: the reference
// instant is truncated to midnight before any offset is applied, and
// the resulting strings are used verbatim as page titles, so the
// formats here must not drift.

// normalizeDate strips the time-of-day component from t.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// formatDate renders a date as yyyy/M/d without zero padding.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// formatDayTitle renders a date as the daily page title, yyyy/M/d (ddd).
func formatDayTitle(t time.Time) string {
	return fmt.Sprintf("%s (%s)", formatDate(t), t.Weekday().String()[:3])
}

// DailyTitle returns the title of the daily page for the given date.
func DailyTitle(now time.Time) string {
	return formatDayTitle(normalizeDate(now))
}

// CurrentWeekLinkRange returns the "start~end" label of the week
// containing now. Sunday counts as the last day of its week.
func CurrentWeekLinkRange(now time.Time) string {
	d := normalizeDate(now)
	var start time.Time
	if d.Weekday() == time.Sunday {
		start = d.AddDate(0, 0, -6)
	} else {
		start = d.AddDate(0, 0, -(int(d.Weekday()) - 1))
	}
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s~%s", formatDate(start), formatDate(end))
}

// NextWeekReportRange returns the weekly report title: the label of the
// week that begins the day after now. Weekly reports are filed under
// the upcoming week even though they summarize the week just completed.
func NextWeekReportRange(now time.Time) string {
	start := normalizeDate(now).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s ~ %s", formatDate(start), formatDate(end))
}

// NextWeekLinkRange returns the "start~end" label of the first full
// week after now. For a Sunday reference the next week starts the very
// next day.
func NextWeekLinkRange(now time.Time) string {
	d := normalizeDate(now)
	var start time.Time
	if d.Weekday() == time.Sunday {
		start = d.AddDate(0, 0, 1)
	} else {
		start = d.AddDate(0, 0, 8-int(d.Weekday()))
	}
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s~%s", formatDate(start), formatDate(end))
}

// LookbackTitles returns the daily page titles for the six days
// strictly preceding now, most recent first. These are the candidate
// pages whose content feeds the weekly summary.
func LookbackTitles(now time.Time) []string {
	d := normalizeDate(now)
	titles := make([]string, 0, 6)
	for i := 1; i <= 6; i++ {
		titles = append(titles, formatDayTitle(d.AddDate(0, 0, -i)))
	}
	return titles
}
