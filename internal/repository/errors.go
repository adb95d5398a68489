package repository

import (
	"errors"
	"fmt"
)

// QueryError marks a store-level failure: unreachable backend, timeout, or a
// rejected query. It is never used for an empty result, which is a plain
// success with zero rows.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// WrapQuery attaches the operation name to a store failure. A nil err passes
// through so call sites can wrap unconditionally.
func WrapQuery(op string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Op: op, Err: err}
}

// IsQueryError reports whether err is (or wraps) a store-level failure.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
