package services

import "errors"

var (
	// ErrInvalidRequest covers missing or malformed request fields. It never
	// reaches the history store; nothing is mutated when it is returned.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownEvent means the category is not in the knowledge base.
	ErrUnknownEvent = errors.New("unknown event category")

	// ErrInsufficientHistory is the predictor's fallback signal, not a
	// failure: fewer than the minimum usable samples were available and the
	// caller should use the knowledge-base default instead.
	ErrInsufficientHistory = errors.New("insufficient event history")
)
