package cli

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daystogether/internal/calculator"
	"github.com/julianstephens/daystogether/internal/clock"
	"github.com/julianstephens/daystogether/internal/config"
	"github.com/julianstephens/daystogether/internal/models"
)

// Context is shared by every command.
type Context struct {
	Config       *config.Config
	Calculator   *calculator.Calculator
	Clock        clock.Clock
	Theme        models.Theme
	TickInterval time.Duration
	Out          io.Writer
}

// NewContext wires a calculator to cfg and the given clock.
func NewContext(cfg *config.Config, clk clock.Clock, theme models.Theme, interval time.Duration, out io.Writer) *Context {
	return &Context{
		Config:       cfg,
		Calculator:   calculator.New(cfg),
		Clock:        clk,
		Theme:        theme,
		TickInterval: interval,
		Out:          out,
	}
}

// Snapshot computes the snapshot for the clock's current instant.
func (c *Context) Snapshot() models.Snapshot {
	return c.Calculator.Compute(c.Clock.Now(), c.Theme)
}

// padRight pads s with spaces to width terminal cells. Labels are mostly
// double-width, so byte or rune counts would misalign the columns.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
