package models

import "errors"

// Sentinel errors for input handling.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrEmptyInput    = errors.New("input contains no rows")
	ErrMissingID     = errors.New("item id is required")
)

// Sentinel errors for schema and query validation.
var (
	ErrInvalidColumn = errors.New("invalid column reference")
	ErrInvalidRange  = errors.New("invalid column range")
	ErrInvalidDepth  = errors.New("invalid traversal depth")
	ErrItemNotFound  = errors.New("item not found")
)
