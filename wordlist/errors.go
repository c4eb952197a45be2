package wordlist

import "github.com/lordvidex/errs"

var (
	// ErrEmptyCategory is returned when a category has no usable words after normalization
	ErrEmptyCategory = errs.B().Code(errs.InvalidArgument).Msg("no valid words provided").Err()

	// ErrInvalidRange is returned when the length window or combination depth is invalid
	ErrInvalidRange = errs.B().Code(errs.InvalidArgument).Msg("invalid range").Err()

	// ErrOrderConflict is returned when the explicit category order does not use every category exactly once
	ErrOrderConflict = errs.B().Code(errs.InvalidArgument).Msg("each category must be used exactly once in the order").Err()
)
