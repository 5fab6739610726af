package cli

import (
	"fmt"
	"sort"
	"strings"

	"babylog/internal/models"
	"babylog/internal/records"
)

type DiaperAddCmd struct {
	Date    string `short:"d" help:"Change date (YYYY-MM-DD). Defaults to today."`
	Time    string `short:"t" help:"Change time (HH:MM)." required:""`
	Changer string `short:"c" help:"Who changed the nappy." required:""`
	Wee     bool   `help:"Nappy contained wee."`
	Poo     bool   `help:"Nappy contained poo."`
	Colour  string `help:"Poo colour (ignored unless --poo)."`
	Notes   string `short:"n" help:"Free-text notes."`
}

func (c *DiaperAddCmd) Run(ctx *Context) error {
	current, err := ctx.Store.FetchDiapers()
	if err != nil {
		return err
	}

	rec := models.DiaperRecord{
		Date:        c.Date,
		Time:        c.Time,
		Changer:     c.Changer,
		ContainsWee: c.Wee,
		ContainsPoo: c.Poo,
		Notes:       c.Notes,
	}
	if rec.Date == "" {
		rec.Date = today()
	}
	if c.Colour != "" {
		colour := c.Colour
		rec.PooColour = &colour
	}

	next, err := records.AddDiaper(current, rec)
	if err != nil {
		return err
	}
	if err := ctx.Store.ReplaceDiapers(next); err != nil {
		return err
	}

	fmt.Printf("Logged nappy change at %s\n", rec.Key())
	return nil
}

type DiaperDeleteCmd struct {
	Key string `arg:"" help:"Record key (\"YYYY-MM-DD HH:MM\"). Every record with this key is removed."`
}

func (c *DiaperDeleteCmd) Run(ctx *Context) error {
	current, err := ctx.Store.FetchDiapers()
	if err != nil {
		return err
	}

	next, err := records.DeleteDiaper(current, c.Key)
	if err != nil {
		return err
	}
	if err := ctx.Store.ReplaceDiapers(next); err != nil {
		return err
	}

	removed := len(current) - len(next)
	if removed > 1 {
		fmt.Printf("Deleted %d nappy changes matching %s\n", removed, c.Key)
	} else {
		fmt.Printf("Deleted nappy change at %s\n", c.Key)
	}
	return nil
}

type DiaperListCmd struct{}

func (c *DiaperListCmd) Run(ctx *Context) error {
	recs, err := ctx.Store.FetchDiapers()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No nappy changes logged")
		return nil
	}

	// Newest first
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Key() > recs[j].Key()
	})

	fmt.Println("Nappy changes:")
	for _, r := range recs {
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

		fmt.Printf("  %s - %s by %s", r.Key(), strings.Join(contents, ", "), r.Changer)
		if r.Notes != "" {
			fmt.Printf(" (%s)", r.Notes)
		}
		fmt.Println()
	}
	return nil
}
