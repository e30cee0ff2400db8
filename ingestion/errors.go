package ingestion

import "errors"

var (
	// ErrJobRepositoryRequired is returned when a job repository is not provided.
	ErrJobRepositoryRequired = errors.New("job repository required")

	// ErrAliasTableRequired is returned when a nil alias table is provided.
	ErrAliasTableRequired = errors.New("alias table required")

	// ErrMalformedFeed is returned when a job feed cannot be decoded.
	ErrMalformedFeed = errors.New("malformed job feed")
)
