package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daystogether/internal/clock"
	"github.com/julianstephens/daystogether/internal/logger"
	"github.com/julianstephens/daystogether/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.NewModel(ctx.Calculator, ctx.Config.StartLabel(), ctx.Clock.Now(), ctx.Theme)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// The driver lives exactly as long as the program: acquired before Run,
	// released when Run returns.
	driver := clock.NewDriver(ctx.Clock, ctx.TickInterval, func(now time.Time) {
		p.Send(tui.TickMsg(now))
	})
	driver.Start(context.Background())
	defer driver.Stop()

	logger.Info("Starting TUI", "theme", ctx.Theme)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited: %w", err)
	}
	return nil
}
