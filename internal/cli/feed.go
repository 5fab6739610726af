package cli

import (
	"fmt"
	"sort"

	"babylog/internal/constants"
	"babylog/internal/models"
	"babylog/internal/records"
)

type FeedAddCmd struct {
	Date     string  `short:"d" help:"Feed start date (YYYY-MM-DD). Defaults to today."`
	Time     string  `short:"t" help:"Feed start time (HH:MM)." required:""`
	Bottle   bool    `help:"Bottle fed. Leave the side flags off for bottle feeds."`
	Quantity float64 `short:"q" help:"Bottle quantity in millilitres." default:"-1"`
	Side     string  `short:"s" help:"Start side (None|Left|Right)." default:"None" enum:"None,Left,Right"`
	SideTime float64 `help:"Time on the start side in minutes." default:"-1"`
	Duration float64 `short:"D" help:"Total time in minutes." default:"-1"`
}

func (c *FeedAddCmd) Run(ctx *Context) error {
	feedDate, err := ParseDateTime(c.Date, c.Time)
	if err != nil {
		return err
	}

	rec := models.FeedRecord{
		FeedDate:  feedDate,
		BottleFed: c.Bottle,
		StartSide: models.Side(c.Side),
	}
	if c.Duration >= 0 {
		d := c.Duration
		rec.Duration = &d
	}
	if c.SideTime >= 0 {
		st := c.SideTime
		rec.StartSideTime = &st
	}
	if c.Quantity >= 0 {
		q := c.Quantity
		rec.BottleQuantity = &q
	}

	current, err := ctx.Store.FetchFeeds()
	if err != nil {
		return err
	}

	next, res, err := records.AddFeed(current, rec)
	if err != nil {
		return err
	}
	PrintWarnings(res.Warnings)

	if err := ctx.Store.ReplaceFeeds(next); err != nil {
		return err
	}

	fmt.Printf("Logged feed at %s\n", rec.Key())
	return nil
}

type FeedDeleteCmd struct {
	Key string `arg:"" help:"Record key (\"YYYY-MM-DD HH:MM\"). Every record with this key is removed."`
}

func (c *FeedDeleteCmd) Run(ctx *Context) error {
	current, err := ctx.Store.FetchFeeds()
	if err != nil {
		return err
	}

	next, err := records.DeleteFeed(current, c.Key)
	if err != nil {
		return err
	}
	if err := ctx.Store.ReplaceFeeds(next); err != nil {
		return err
	}

	removed := len(current) - len(next)
	if removed > 1 {
		fmt.Printf("Deleted %d feeds matching %s\n", removed, c.Key)
	} else {
		fmt.Printf("Deleted feed at %s\n", c.Key)
	}
	return nil
}

type FeedListCmd struct{}

func (c *FeedListCmd) Run(ctx *Context) error {
	recs, err := ctx.Store.FetchFeeds()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No feeds logged")
		return nil
	}

	// Newest first
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].FeedDate.After(recs[j].FeedDate)
	})

	fmt.Println("Feeds:")
	for _, r := range recs {
		if r.BottleFed {
			qty := "?"
			if r.BottleQuantity != nil {
				qty = fmt.Sprintf("%.0fml", *r.BottleQuantity)
			}
			fmt.Printf("  %s - bottle (%s)\n", r.FeedDate.Format(constants.DateTimeFormat), qty)
			continue
		}

		detail := ""
		if r.Duration != nil {
			detail = fmt.Sprintf(", %.0fm total", *r.Duration)
		}
		if r.StartSide != models.SideNone && r.StartSideTime != nil {
			detail += fmt.Sprintf(", started %s for %.0fm", r.StartSide, *r.StartSideTime)
		}
		fmt.Printf("  %s - breastfeed%s\n", r.FeedDate.Format(constants.DateTimeFormat), detail)
	}
	return nil
}
