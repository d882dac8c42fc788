package models

import "errors"

var (
	// ErrMalformedRow marks a source row missing a required field or
	// carrying an unparseable value. Recoverable: the row is skipped.
	ErrMalformedRow = errors.New("malformed row")

	// ErrInvalidTimestamp marks a datetime value that is not a
	// non-negative integer epoch-millisecond. Treated as a malformed row.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrStoreUnavailable marks a transaction store that cannot be
	// reached. Fatal for the current operation.
	ErrStoreUnavailable = errors.New("transaction store unavailable")

	// ErrAggregationSource marks an aggregate run whose source query
	// failed. Fatal for that rollup.
	ErrAggregationSource = errors.New("aggregation source unavailable")
)
