package cli

import (
	"errors"

	"SimplyRugby/internal/club/app"

	ucli "github.com/urfave/cli/v2"
)

const (
	ExitOK          = 0
	ExitInternal    = 1
	ExitNotFound    = 2
	ExitDataCorrupt = 3
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case app.IsNotFound(err):
		return ExitNotFound
	case errors.Is(err, app.ErrDataCorrupt):
		return ExitDataCorrupt
	default:
		return ExitInternal
	}
}

func toExitError(err error) error {
	if err == nil {
		return nil
	}
	return ucli.Exit(err.Error(), exitCode(err))
}
