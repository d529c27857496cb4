package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/julianstephens/daystogether/internal/clock"
	"github.com/julianstephens/daystogether/internal/display"
	"github.com/julianstephens/daystogether/internal/models"
)

type WatchCmd struct {
	Count int `help:"Stop after this many ticks (0 runs until interrupted)." default:"0"`
}

func (c *WatchCmd) Run(ctx *Context) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.watch(runCtx, ctx)
}

func (c *WatchCmd) watch(runCtx context.Context, ctx *Context) error {
	// One-slot buffer: a tick that arrives while the previous one is still
	// being rendered is dropped rather than queued.
	ticks := make(chan time.Time, 1)
	driver := clock.NewDriver(ctx.Clock, ctx.TickInterval, func(now time.Time) {
		select {
		case ticks <- now:
		default:
		}
	})

	c.render(ctx, ctx.Calculator.Compute(ctx.Clock.Now(), ctx.Theme))

	driver.Start(runCtx)
	defer driver.Stop()

	n := 0
	for {
		select {
		case <-runCtx.Done():
			fmt.Fprintln(ctx.Out)
			return nil
		case now := <-ticks:
			c.render(ctx, ctx.Calculator.Compute(now, ctx.Theme))
			n++
			if c.Count > 0 && n >= c.Count {
				fmt.Fprintln(ctx.Out)
				return nil
			}
		}
	}
}

func (c *WatchCmd) render(ctx *Context, s models.Snapshot) {
	fmt.Fprintf(ctx.Out, "\r\x1b[2K%s", formatWatchLine(s))
}

func formatWatchLine(s models.Snapshot) string {
	parts := []string{display.Headline(s), display.Clock(s.Duration)}
	if s.HasStarted {
		parts = append(parts, display.NextMilestone(s))
	}
	return strings.Join(parts, " | ")
}
