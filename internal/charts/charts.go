// Package charts renders the summary charts as terminal bar charts.
package charts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"babylog/internal/constants"
	"babylog/internal/models"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(PinkHex))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(PinkHex))
	altStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(BrownHex))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Palette carried over from the app's original look.
const (
	BrownHex = "#4E342E"
	PinkHex  = "#FF80AB"
)

type row struct {
	label string
	value float64
}

func renderBars(title, unit string, rows []row, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(labelStyle.Render("  no data yet"))
		b.WriteString("\n")
		return b.String()
	}

	var max float64
	for _, r := range rows {
		if r.value > max {
			max = r.value
		}
	}

	for _, r := range rows {
		n := 0
		if max > 0 {
			n = int(r.value / max * barWidth)
		}
		if n == 0 && r.value > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", r.label)),
			style.Render(strings.Repeat("█", n)),
			labelStyle.Render(fmt.Sprintf("%.0f%s", r.value, unit)))
	}
	return b.String()
}

func sortedDays(m map[string]float64) []row {
	days := make([]string, 0, len(m))
	for d := range m {
		days = append(days, d)
	}
	sort.Strings(days)
	rows := make([]row, 0, len(days))
	for _, d := range days {
		rows = append(rows, row{label: d, value: m[d]})
	}
	return rows
}

// FeedsPerDay charts the number of feeds per day, with bottle feeds broken
// out on a second chart.
func FeedsPerDay(feeds []models.FeedRecord) string {
	total := make(map[string]float64)
	bottle := make(map[string]float64)
	for _, f := range feeds {
		day := f.FeedDate.Format(constants.DateFormat)
		total[day]++
		if f.BottleFed {
			bottle[day]++
		}
	}
	out := renderBars("Feeds per Day", "", sortedDays(total), barStyle)
	if len(bottle) > 0 {
		out += renderBars("Bottle Feeds per Day", "", sortedDays(bottle), altStyle)
	}
	return out
}

// FeedMinutesPerDay charts the total feed duration per day, keyed by the feed
// start day.
func FeedMinutesPerDay(feeds []models.FeedRecord) string {
	byDay := make(map[string]float64)
	for _, f := range feeds {
		if f.Duration == nil {
			continue
		}
		byDay[f.FeedDate.Format(constants.DateFormat)] += *f.Duration
	}
	return renderBars("Feed Duration per Day", "m", sortedDays(byDay), barStyle)
}

// SideSplit charts the percentage of breastfeeding minutes spent on each
// side. A feed's start-side minutes go to the start side and the remainder of
// its duration to the other side.
func SideSplit(feeds []models.FeedRecord) string {
	var left, right float64
	for _, f := range feeds {
		if f.Duration == nil || f.StartSideTime == nil {
			continue
		}
		rest := *f.Duration - *f.StartSideTime
		switch f.StartSide {
		case models.SideLeft:
			left += *f.StartSideTime
			right += rest
		case models.SideRight:
			right += *f.StartSideTime
			left += rest
		}
	}
	total := left + right
	if total == 0 {
		return renderBars("Feed Duration by Side", "%", nil, barStyle)
	}
	rows := []row{
		{label: "Left", value: 100 * left / total},
		{label: "Right", value: 100 * right / total},
	}
	return renderBars("Feed Duration by Side", "%", rows, barStyle)
}

// SleepMinutesPerDay charts total closed-sleep minutes per day, keyed by the
// sleep start day. Open sleeps are excluded until they close.
func SleepMinutesPerDay(sleeps []models.SleepRecord) string {
	byDay := make(map[string]float64)
	for _, s := range sleeps {
		if s.Open() {
			continue
		}
		byDay[s.SleepStartTime.Format(constants.DateFormat)] += s.DurationMin()
	}
	return renderBars("Sleep Duration per Day", "m", sortedDays(byDay), barStyle)
}
