package tui

import (
	"time"

	"github.com/charmbracelet/huh"

	"babylog/internal/constants"
	"babylog/internal/records"
)

func todayStr() string {
	return time.Now().Format(constants.DateFormat)
}

func (m *Model) newDiaperForm() *huh.Form {
	m.diaperForm = &diaperFormModel{Date: todayStr()}
	changers := records.SuggestChangers(m.diapers)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Change Date (YYYY-MM-DD)").
				Value(&m.diaperForm.Date),
			huh.NewInput().
				Title("Change Time (HH:MM)").
				Value(&m.diaperForm.Time),
			huh.NewSelect[string]().
				Title("Changer").
				Options(huh.NewOptions(changers...)...).
				Value(&m.diaperForm.Changer),
			huh.NewConfirm().
				Title("Contains Wee?").
				Value(&m.diaperForm.Wee),
			huh.NewConfirm().
				Title("Contains Poo?").
				Value(&m.diaperForm.Poo),
			huh.NewInput().
				Title("Poo Colour (ignored without poo)").
				Value(&m.diaperForm.Colour),
			huh.NewInput().
				Title("Notes").
				Value(&m.diaperForm.Notes),
		),
	)
}

func (m *Model) newSleepForm() *huh.Form {
	m.sleepForm = &sleepFormModel{Date: todayStr(), Settle: "0"}
	locations := records.SuggestSleepLocations(m.sleeps)
	techniques := records.SuggestSettlingTechniques(m.sleeps)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep Start Date (YYYY-MM-DD)").
				Value(&m.sleepForm.Date),
			huh.NewInput().
				Title("Sleep Start Time (HH:MM)").
				Description("The time the baby went to sleep; settling is logged separately.").
				Value(&m.sleepForm.Time),
			huh.NewInput().
				Title("Time to Settle (Minutes)").
				Value(&m.sleepForm.Settle),
			huh.NewSelect[string]().
				Title("Sleep Location").
				Options(huh.NewOptions(locations...)...).
				Value(&m.sleepForm.Location),
			huh.NewMultiSelect[string]().
				Title("Settling Techniques").
				Options(huh.NewOptions(techniques...)...).
				Value(&m.sleepForm.Techniques),
		),
	)
}

func (m *Model) newFeedForm() *huh.Form {
	m.feedForm = &feedFormModel{Date: todayStr(), Side: "None"}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Value(&m.feedForm.Date),
			huh.NewInput().
				Title("Start Time (HH:MM)").
				Value(&m.feedForm.Time),
			huh.NewConfirm().
				Title("Bottle Fed?").
				Description("Leave the side fields blank for bottle feeds.").
				Value(&m.feedForm.Bottle),
			huh.NewInput().
				Title("Bottle Quantity (ml)").
				Value(&m.feedForm.Quantity),
			huh.NewSelect[string]().
				Title("Start Side").
				Options(huh.NewOptions("None", "Left", "Right")...).
				Value(&m.feedForm.Side),
			huh.NewInput().
				Title("Time on Start Side (Minutes)").
				Value(&m.feedForm.SideTime),
			huh.NewInput().
				Title("Total Time (Minutes)").
				Value(&m.feedForm.Duration),
		),
	)
}

func (m *Model) newWakeForm() *huh.Form {
	m.wakeForm = &wakeFormModel{Date: todayStr()}

	var open []string
	for _, r := range m.sleeps {
		if r.Open() {
			open = append(open, r.SleepStartTime.Format(constants.DateTimeFormat))
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Sleep").
				Options(huh.NewOptions(open...)...).
				Value(&m.wakeForm.StartKey),
			huh.NewInput().
				Title("Wake Up Date (YYYY-MM-DD)").
				Value(&m.wakeForm.Date),
			huh.NewInput().
				Title("Wake Up Time (HH:MM)").
				Value(&m.wakeForm.Time),
			huh.NewConfirm().
				Title("Temporary Wake Up?").
				Value(&m.wakeForm.Temporary),
		),
	)
}
