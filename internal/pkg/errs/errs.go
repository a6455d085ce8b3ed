// Package errs is the error vocabulary shared by every layer. It wraps
// cockroachdb/errors so sentinels carry stack traces and category marks
// survive wrapping.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error { return cr.New(msg) }

func Newf(format string, args ...any) error { return cr.Newf(format, args...) }

// Wrap returns nil for a nil err so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so Is(err, category) holds. A nil err yields category itself.
func Mark(err, category error) error {
	if err == nil {
		return category
	}
	return cr.Mark(err, category)
}

// Is matches through wrapping and marks.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
