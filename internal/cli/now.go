package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/daystogether/internal/calculator"
	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/display"
)

type NowCmd struct {
	JSON bool `help:"Print the snapshot as JSON." short:"j"`
}

func (c *NowCmd) Run(ctx *Context) error {
	s := ctx.Snapshot()

	if c.JSON {
		jsonBytes, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Fprintln(ctx.Out, string(jsonBytes))
		return nil
	}

	fmt.Fprintln(ctx.Out, ctx.Config.StartLabel())
	fmt.Fprintln(ctx.Out, display.Headline(s))
	fmt.Fprintln(ctx.Out, s.ThemeCopy.Message)
	fmt.Fprintln(ctx.Out)

	fmt.Fprintf(ctx.Out, "  %s  %d\n", padRight(constants.TotalDaysLabel, 10), s.TotalDaysElapsed)
	for _, d := range display.Details(s.Duration) {
		fmt.Fprintf(ctx.Out, "  %s  %s\n", padRight(d.Label, 10), d.Value)
	}
	if msg := display.Countdown(s); msg != "" {
		fmt.Fprintf(ctx.Out, "\n%s\n", msg)
	}

	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, s.ThemeCopy.Title)
	for _, ms := range calculator.Timeline(s.MilestoneStatuses) {
		mark := "○"
		if ms.Reached {
			mark = "●"
		}
		fmt.Fprintf(ctx.Out, "  %s %s  %s\n", mark, padRight(ms.Label, 16), display.TimelineTarget(ms))
	}
	fmt.Fprintf(ctx.Out, "\n%s\n", display.NextMilestone(s))

	return nil
}
