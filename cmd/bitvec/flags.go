package main

import (
	"github.com/urfave/cli/v2"
)

var (
	// logLevelFlag sets the minimum slog level written to stderr.
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Logging verbosity (debug, info, warn, error)",
		Value:   "info",
		EnvVars: []string{"BITVEC_LOG_LEVEL"},
	}
	// logFormatFlag selects the slog handler.
	logFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Log output format (text, json)",
		Value: "text",
	}
	// formatFlag names the codec used by encode and decode.
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Encoding format (binary, json, go-json)",
		Value:   "binary",
	}
	leftFlag = &cli.StringFlag{
		Name:     "left",
		Usage:    "Whitespace-separated members of the left operand",
		Required: true,
	}
	rightFlag = &cli.StringFlag{
		Name:     "right",
		Usage:    "Whitespace-separated members of the right operand",
		Required: true,
	}
	startFlag = &cli.UintFlag{
		Name:     "start",
		Usage:    "First member of the inclusive range",
		Required: true,
	}
	endFlag = &cli.UintFlag{
		Name:     "end",
		Usage:    "Last member of the inclusive range",
		Required: true,
	}
)

var appFlags = []cli.Flag{
	logLevelFlag,
	logFormatFlag,
}
