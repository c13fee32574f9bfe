package main

import (
	"errors"
	"os"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/edgelist"
	"github.com/katalvlaran/socialnet/internal/config"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, env or flag value, no dataset)
	ExitDataError   = 3 // Data error (unreadable or malformed edge list, unknown node)
)

// errConfig tags failures that map to ExitConfigError.
var errConfig = errors.New("configuration error")

// exitCodeFor classifies err by the sentinels it wraps.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errConfig), errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, edgelist.ErrMalformedLine),
		errors.Is(err, core.ErrInvalidEdge),
		errors.Is(err, core.ErrUnknownNode),
		errors.Is(err, core.ErrEmptyGraph),
		errors.Is(err, os.ErrNotExist):
		return ExitDataError
	default:
		return ExitError
	}
}
