package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"babylog/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateAddRecord || m.state == StateWakeUp {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StateBowels:
		content = m.viewBowels()
	case StateSleeping:
		content = m.viewSleeping()
	case StateFeeding:
		content = m.viewFeeding()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Bowels", "Sleeping", "Feeding"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewBowels() string {
	if len(m.diapers) == 0 {
		return docStyle.Render("No nappy changes logged. Press 'a' to add one.")
	}

	var recs []string
	sorted := append(m.diapers[:0:0], m.diapers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() > sorted[j].Key() })

	for _, r := range sorted {
		var contents []string
		if r.ContainsWee {
			contents = append(contents, "wee")
		}
		if r.ContainsPoo {
			if r.PooColour != nil {
				contents = append(contents, "poo ("+*r.PooColour+")")
			} else {
				contents = append(contents, "poo")
			}
		}
		if len(contents) == 0 {
			contents = append(contents, "dry")
		}
		line := fmt.Sprintf("%s  %-18s %s", r.Key(), strings.Join(contents, ", "), r.Changer)
		if r.Notes != "" {
			line += "  " + r.Notes
		}
		recs = append(recs, line)
	}
	return docStyle.Render(strings.Join(recs, "\n"))
}

func (m Model) viewSleeping() string {
	if len(m.sleeps) == 0 {
		return docStyle.Render("No sleeps logged. Press 'a' to add one.")
	}

	sorted := append(m.sleeps[:0:0], m.sleeps...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SleepStartTime.After(sorted[j].SleepStartTime)
	})

	var lines []string
	for _, r := range sorted {
		status := "still asleep"
		if !r.Open() {
			status = "woke " + r.SleepEndTime.Format(constants.DateTimeFormat)
		}
		lines = append(lines, fmt.Sprintf("[%d] %s  %-22s %s (settled in %dm)",
			r.SleepID, r.SleepStartTime.Format(constants.DateTimeFormat), status, r.SleepLocation, r.TimeToSettle))
		if len(r.TemporaryWakeUpTimes) > 0 {
			var wakes []string
			for _, w := range r.TemporaryWakeUpTimes {
				wakes = append(wakes, w.Format(constants.TimeFormat))
			}
			lines = append(lines, "      woke briefly: "+strings.Join(wakes, ", "))
		}
	}
	return docStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewFeeding() string {
	if len(m.feeds) == 0 {
		return docStyle.Render("No feeds logged. Press 'a' to add one.")
	}

	sorted := append(m.feeds[:0:0], m.feeds...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FeedDate.After(sorted[j].FeedDate)
	})

	var lines []string
	for _, r := range sorted {
		if r.BottleFed {
			qty := "?"
			if r.BottleQuantity != nil {
				qty = fmt.Sprintf("%.0fml", *r.BottleQuantity)
			}
			lines = append(lines, fmt.Sprintf("%s  bottle  %s", r.FeedDate.Format(constants.DateTimeFormat), qty))
			continue
		}
		detail := ""
		if r.Duration != nil {
			detail = fmt.Sprintf("%.0fm", *r.Duration)
		}
		if r.StartSideTime != nil {
			detail += fmt.Sprintf("  started %s %.0fm", r.StartSide, *r.StartSideTime)
		}
		lines = append(lines, fmt.Sprintf("%s  breast  %s", r.FeedDate.Format(constants.DateTimeFormat), detail))
	}
	return docStyle.Render(strings.Join(lines, "\n"))
}
