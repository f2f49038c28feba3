package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrImportRunNotFound     = errors.New("import run not found")
	ErrUnknownSheet          = errors.New("unknown sheet")
	ErrNonChronologicalMonth = errors.New("month key does not sort chronologically")
	ErrEmptyFile             = errors.New("file contains no data rows")
)

// Validation constants
const (
	MaxCategoryLength    = 255
	MaxDescriptionLength = 1000
)
