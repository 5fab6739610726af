package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"babylog/internal/constants"
	"babylog/internal/models"
	"babylog/internal/records"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state == StateAddRecord || m.state == StateWakeUp {
			break // form owns the keyboard
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % pageCount
			m.status = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + pageCount) % pageCount
			m.status = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Add):
			m.previousState = m.state
			switch m.state {
			case StateBowels:
				m.form = m.newDiaperForm()
			case StateSleeping:
				m.form = m.newSleepForm()
			case StateFeeding:
				m.form = m.newFeedForm()
			}
			m.state = StateAddRecord
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Wake):
			if m.state != StateSleeping {
				break
			}
			m.previousState = m.state
			m.form = m.newWakeForm()
			m.state = StateWakeUp
			return m, m.form.Init()
		}
	}

	if m.state == StateAddRecord || m.state == StateWakeUp {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateWakeUp {
			m.submitWakeUp()
		} else {
			switch m.previousState {
			case StateBowels:
				m.submitDiaper()
			case StateSleeping:
				m.submitSleep()
			case StateFeeding:
				m.submitFeed()
			}
		}
		m.state = m.previousState
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitDiaper() {
	rec := models.DiaperRecord{
		Date:        m.diaperForm.Date,
		Time:        m.diaperForm.Time,
		Changer:     m.diaperForm.Changer,
		ContainsWee: m.diaperForm.Wee,
		ContainsPoo: m.diaperForm.Poo,
		Notes:       m.diaperForm.Notes,
	}
	if c := strings.TrimSpace(m.diaperForm.Colour); c != "" {
		rec.PooColour = &c
	}

	next, err := records.AddDiaper(m.diapers, rec)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if err := m.store.ReplaceDiapers(next); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = "Nappy Data Updated!"
	m.reload()
}

func (m *Model) submitSleep() {
	start, err := parsePageDateTime(m.sleepForm.Date, m.sleepForm.Time)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	settle, err := strconv.Atoi(strings.TrimSpace(m.sleepForm.Settle))
	if err != nil {
		m.status = "Error: time to settle must be a number"
		return
	}

	next, err := records.AddSleep(m.sleeps, models.SleepRecord{
		SleepStartTime:     start,
		TimeToSettle:       settle,
		SleepLocation:      m.sleepForm.Location,
		SettlingTechniques: m.sleepForm.Techniques,
	})
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if err := m.store.ReplaceSleeps(next); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = "Sleeping Data Updated!"
	m.reload()
}

func (m *Model) submitFeed() {
	feedDate, err := parsePageDateTime(m.feedForm.Date, m.feedForm.Time)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}

	rec := models.FeedRecord{
		FeedDate:  feedDate,
		BottleFed: m.feedForm.Bottle,
		StartSide: models.Side(m.feedForm.Side),
	}
	if v, ok := parseOptionalFloat(m.feedForm.Quantity); ok {
		rec.BottleQuantity = &v
	}
	if v, ok := parseOptionalFloat(m.feedForm.SideTime); ok {
		rec.StartSideTime = &v
	}
	if v, ok := parseOptionalFloat(m.feedForm.Duration); ok {
		rec.Duration = &v
	}

	next, res, err := records.AddFeed(m.feeds, rec)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if err := m.store.ReplaceFeeds(next); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if res.HasWarnings() {
		m.status = "Saved with warning: " + strings.Join(res.Warnings, "; ")
	} else {
		m.status = "Drinking Data Updated!"
	}
	m.reload()
}

func (m *Model) submitWakeUp() {
	start, err := time.ParseInLocation(constants.DateTimeFormat, m.wakeForm.StartKey, time.Local)
	if err != nil {
		m.status = "Error: no sleep selected"
		return
	}
	wakeUp, err := parsePageDateTime(m.wakeForm.Date, m.wakeForm.Time)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}

	var next []models.SleepRecord
	if m.wakeForm.Temporary {
		next, err = records.AppendTemporaryWakeup(m.sleeps, start, wakeUp)
	} else {
		next, err = records.CloseSleep(m.sleeps, start, wakeUp)
	}
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if err := m.store.ReplaceSleeps(next); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = "Sleeping Data Updated!"
	m.reload()
}

func parsePageDateTime(date, tod string) (time.Time, error) {
	return time.ParseInLocation(constants.DateTimeFormat,
		strings.TrimSpace(date)+" "+strings.TrimSpace(tod), time.Local)
}

func parseOptionalFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
