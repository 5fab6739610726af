package cli

import (
	"fmt"

	"babylog/internal/charts"
)

type StatsCmd struct {
	Feeds bool `help:"Show only feeding charts."`
	Sleep bool `help:"Show only sleeping charts."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	showFeeds := c.Feeds || !c.Sleep
	showSleep := c.Sleep || !c.Feeds

	if showFeeds {
		feeds, err := ctx.Store.FetchFeeds()
		if err != nil {
			return err
		}
		fmt.Println(charts.FeedsPerDay(feeds))
		fmt.Println(charts.FeedMinutesPerDay(feeds))
		fmt.Println(charts.SideSplit(feeds))
	}

	if showSleep {
		sleeps, err := ctx.Store.FetchSleeps()
		if err != nil {
			return err
		}
		fmt.Println(charts.SleepMinutesPerDay(sleeps))
	}

	return nil
}
