package db

import "errors"

// Domain-level database error sentinels.
var (
	// Keyword lookup errors
	ErrEmptyKeyword = errors.New("keyword lookup requires a keyword")
	ErrEmptyOutcome = errors.New("keyword lookup requires an outcome")
)
