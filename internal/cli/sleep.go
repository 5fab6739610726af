package cli

import (
	"fmt"
	"sort"
	"strings"

	"babylog/internal/constants"
	"babylog/internal/models"
	"babylog/internal/records"
)

type SleepAddCmd struct {
	Date       string   `short:"d" help:"Sleep start date (YYYY-MM-DD). Defaults to today."`
	Time       string   `short:"t" help:"Time the baby went to sleep (HH:MM), not counting settling." required:""`
	Settle     int      `short:"s" help:"Time to settle in minutes." default:"0"`
	Location   string   `short:"l" help:"Sleep location." default:"Moses Basket"`
	Techniques []string `short:"T" help:"Settling techniques used."`
}

func (c *SleepAddCmd) Run(ctx *Context) error {
	start, err := ParseDateTime(c.Date, c.Time)
	if err != nil {
		return err
	}

	current, err := ctx.Store.FetchSleeps()
	if err != nil {
		return err
	}

	next, err := records.AddSleep(current, models.SleepRecord{
		SleepStartTime:     start,
		TimeToSettle:       c.Settle,
		SleepLocation:      c.Location,
		SettlingTechniques: c.Techniques,
	})
	if err != nil {
		return err
	}
	if err := ctx.Store.ReplaceSleeps(next); err != nil {
		return err
	}

	fmt.Printf("Logged sleep from %s (id %d)\n",
		start.Format(constants.DateTimeFormat), next[len(next)-1].SleepID)
	return nil
}

type SleepWakeCmd struct {
	Start     string `arg:"" help:"Start time of the open sleep (\"YYYY-MM-DD HH:MM\")."`
	Date      string `short:"d" help:"Wake up date (YYYY-MM-DD). Defaults to today."`
	Time      string `short:"t" help:"Wake up time (HH:MM)." required:""`
	Temporary bool   `help:"The baby woke but the sleep continues."`
}

func (c *SleepWakeCmd) Run(ctx *Context) error {
	startTime, err := parseKey(c.Start)
	if err != nil {
		return err
	}
	wakeUp, err := ParseDateTime(c.Date, c.Time)
	if err != nil {
		return err
	}

	current, err := ctx.Store.FetchSleeps()
	if err != nil {
		return err
	}

	var next []models.SleepRecord
	if c.Temporary {
		next, err = records.AppendTemporaryWakeup(current, startTime, wakeUp)
	} else {
		next, err = records.CloseSleep(current, startTime, wakeUp)
	}
	if err != nil {
		return err
	}
	if err := ctx.Store.ReplaceSleeps(next); err != nil {
		return err
	}

	if c.Temporary {
		fmt.Printf("Logged temporary wake up at %s\n", wakeUp.Format(constants.DateTimeFormat))
	} else {
		fmt.Printf("Logged wake up at %s\n", wakeUp.Format(constants.DateTimeFormat))
	}
	return nil
}

type SleepDeleteCmd struct {
	ID int64 `arg:"" help:"Sleep id to delete."`
}

func (c *SleepDeleteCmd) Run(ctx *Context) error {
	current, err := ctx.Store.FetchSleeps()
	if err != nil {
		return err
	}

	next, err := records.DeleteSleep(current, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.ReplaceSleeps(next); err != nil {
		return err
	}

	fmt.Printf("Deleted sleep %d\n", c.ID)
	return nil
}

type SleepListCmd struct {
	OpenOnly bool `help:"Show only sleeps still in progress."`
}

func (c *SleepListCmd) Run(ctx *Context) error {
	recs, err := ctx.Store.FetchSleeps()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No sleeps logged")
		return nil
	}

	// Newest first
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].SleepStartTime.After(recs[j].SleepStartTime)
	})

	fmt.Println("Sleeps:")
	for _, r := range recs {
		if c.OpenOnly && !r.Open() {
			continue
		}

		status := "open"
		if !r.Open() {
			status = fmt.Sprintf("woke %s", r.SleepEndTime.Format(constants.DateTimeFormat))
		}
		fmt.Printf("  [%d] %s - %s (%s, settled in %dm)\n",
			r.SleepID, r.SleepStartTime.Format(constants.DateTimeFormat), status,
			r.SleepLocation, r.TimeToSettle)

		if len(r.SettlingTechniques) > 0 {
			fmt.Printf("      Settled by: %s\n", strings.Join(r.SettlingTechniques, ", "))
		}
		for _, w := range r.TemporaryWakeUpTimes {
			fmt.Printf("      Woke briefly at %s\n", w.Format(constants.DateTimeFormat))
		}
	}
	return nil
}
