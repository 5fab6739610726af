package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"babylog/internal/models"
	"babylog/internal/storage"
)

type SessionState int

const (
	StateBowels SessionState = iota
	StateSleeping
	StateFeeding
	StateAddRecord
	StateWakeUp
)

// pageCount is the number of top-level tabs.
const pageCount = 3

type diaperFormModel struct {
	Date    string
	Time    string
	Changer string
	Wee     bool
	Poo     bool
	Colour  string
	Notes   string
}

type sleepFormModel struct {
	Date       string
	Time       string
	Settle     string
	Location   string
	Techniques []string
}

type feedFormModel struct {
	Date     string
	Time     string
	Bottle   bool
	Quantity string
	Side     string
	SideTime string
	Duration string
}

type wakeFormModel struct {
	StartKey  string
	Date      string
	Time      string
	Temporary bool
}

type Model struct {
	store *storage.Session

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	diapers []models.DiaperRecord
	sleeps  []models.SleepRecord
	feeds   []models.FeedRecord

	form       *huh.Form
	diaperForm *diaperFormModel
	sleepForm  *sleepFormModel
	feedForm   *feedFormModel
	wakeForm   *wakeFormModel

	status   string
	quitting bool
	width    int
	height   int
}

// NewModel builds the dashboard over the given session. Collections are read
// through the session cache, so re-renders within one generation never hit
// the store.
func NewModel(store *storage.Session) Model {
	m := Model{
		store: store,
		state: StateBowels,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.reload()
	return m
}

// reload refetches every page's collection. Cheap when nothing has been
// written: the session cache serves repeats at the same generation.
func (m *Model) reload() {
	var err error
	if m.diapers, err = m.store.FetchDiapers(); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if m.sleeps, err = m.store.FetchSleeps(); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if m.feeds, err = m.store.FetchFeeds(); err != nil {
		m.status = "Error: " + err.Error()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
