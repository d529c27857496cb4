package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/daystogether/internal/logger"
)

// ErrInvalidConfig marks errors caused by a malformed start date or milestone table.
var ErrInvalidConfig = stderrors.New("invalid configuration")

const (
	ExitFailure = 1
	ExitConfig  = 2
)

// InvalidConfig wraps a configuration report so callers can match ErrInvalidConfig.
func InvalidConfig(report string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, report)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, ErrInvalidConfig):
		return ExitConfig
	default:
		return ExitFailure
	}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits with the status ExitCode assigns to it
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}

// Fatalf logs and formats an error message, then exits with ExitFailure
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(ExitFailure)
}
