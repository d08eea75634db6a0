package main

import (
	"errors"
	"os"

	docgen "github.com/onethousand/go-docgen"
	"github.com/onethousand/go-docgen/internal/config"
)

// Exit codes for the docgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
	ExitIO      = 3
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, docgen.ErrLoadContent) ||
		errors.Is(err, docgen.ErrWriteOutput) ||
		errors.Is(err, ErrNoContent) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, docgen.ErrEmptyContentPath) ||
		errors.Is(err, docgen.ErrEmptyOutputPath) ||
		errors.Is(err, docgen.ErrInvalidKind) ||
		errors.Is(err, docgen.ErrInvalidLanguage) {
		return ExitUsage
	}

	return ExitGeneral
}
