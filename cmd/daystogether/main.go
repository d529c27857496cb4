package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daystogether/internal/cli"
	"github.com/julianstephens/daystogether/internal/clock"
	"github.com/julianstephens/daystogether/internal/config"
	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/errors"
	"github.com/julianstephens/daystogether/internal/logger"
	"github.com/julianstephens/daystogether/internal/models"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	LogDir  string `help:"Directory for log files." type:"path" default:"~/.config/daystogether"`
	Theme   string `help:"Initial season theme (not remembered between runs)." enum:"winter,summer" default:"winter"`

	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive counter." default:"1"`
	Now        cli.NowCmd        `cmd:"" help:"Print the current count once."`
	Milestones cli.MilestonesCmd `cmd:"" help:"List milestones and their status."`
	Watch      cli.WatchCmd      `cmd:"" help:"Print a live one-line counter until interrupted."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Counts the days together since 2025.06.23"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// Mirroring logs to stderr would draw over the alternate screen.
	inTUI := ctx.Selected() == nil || ctx.Selected().Name == "tui"
	if err := logger.Init(logger.Config{
		Debug:  CLI.Debug,
		Stderr: !inTUI,
		LogDir: CLI.LogDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}

	theme, err := models.ParseTheme(CLI.Theme)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := cli.NewContext(cfg, clock.RealClock{}, theme, constants.TickInterval, os.Stdout)
	logger.Debug("Configuration loaded", "start", cfg.Start, "milestones", len(cfg.Milestones))

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
