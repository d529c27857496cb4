package cli

import (
	"fmt"

	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/display"
)

type MilestonesCmd struct{}

func (c *MilestonesCmd) Run(ctx *Context) error {
	s := ctx.Snapshot()

	fmt.Fprintf(ctx.Out, "%s (%d/%d)\n\n", constants.GridTitle, s.ReachedCount(), len(s.MilestoneStatuses))
	for _, ms := range s.MilestoneStatuses {
		fmt.Fprintf(ctx.Out, "  %s  %s  %s\n",
			padRight(ms.Label, 16),
			padRight(display.MilestoneTarget(ms), 8),
			display.MilestoneTone(ms),
		)
	}
	return nil
}
