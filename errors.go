package docgen

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContentPath = errors.New("content path cannot be empty")
	ErrEmptyOutputPath  = errors.New("output path cannot be empty")
	ErrInvalidKind      = errors.New("invalid artifact kind")
	ErrInvalidLanguage  = errors.New("invalid language")
	ErrLoadContent      = errors.New("failed to load content")
	ErrRender           = errors.New("rendering failed")
	ErrWriteOutput      = errors.New("failed to write output")
)
