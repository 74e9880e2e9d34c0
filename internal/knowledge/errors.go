// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import "github.com/cockroachdb/errors"

// Sentinel errors returned by Store operations. Test with errors.Is; the
// returned errors wrap these with the offending category or entity.
var (
	// ErrInvalidCategory means the category is not one the store recognizes.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrNotFound means the category is valid but holds no matching entity.
	ErrNotFound = errors.New("not found")

	// ErrOutOfMemory means the store is at its entry capacity.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrTooLong means an entity or answer exceeds its bound under the
	// reject overflow policy.
	ErrTooLong = errors.New("text too long")

	// ErrEmptyEntity means the entity is blank after trimming.
	ErrEmptyEntity = errors.New("empty entity")

	// ErrIO marks stream failures from Read and Write. The underlying cause
	// stays reachable through errors.Is / errors.As.
	ErrIO = errors.New("knowledge i/o error")
)

func ioError(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIO)
}
