// Package errs defines the sentinel errors returned by strided packages.
//
// Errors are wrapped with context using fmt.Errorf("%w: ..."), so callers
// should match them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidRecordSize is returned when a record size is not positive or
	// is smaller than the field it must hold.
	ErrInvalidRecordSize = errors.New("invalid record size")

	// ErrInvalidFieldOffset is returned when a field offset is negative or the
	// field does not fit inside its record.
	ErrInvalidFieldOffset = errors.New("invalid field offset")

	// ErrInvalidCount is returned when a record count is negative or exceeds
	// the number of records the buffer holds.
	ErrInvalidCount = errors.New("invalid record count")

	// ErrNilByteOrder is returned when a nil byte order engine is supplied.
	ErrNilByteOrder = errors.New("nil byte order engine")

	// ErrUncomparableByteOrder is returned when a byte order engine's type
	// cannot be compared with ==, which column equality relies on.
	ErrUncomparableByteOrder = errors.New("uncomparable byte order engine")
)
