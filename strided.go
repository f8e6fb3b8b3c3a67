// Package strided provides non-owning strided views over Go slices.
//
// A view addresses every stride-th element of an existing buffer, so
// sub-ranges, reversed traversal and decimation (every Nth element) are
// expressed without copying. The extent and stride of a view are either
// carried in its type, costing no storage, or resolved at construction.
//
// # Basic Usage
//
//	buf := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
//
//	evens := strided.Every(buf, 2)        // 0 2 4 6 8
//	tail := evens.DropFirst(2)            // 4 6 8
//	back := strided.Backward(buf).First(3) // 9 8 7
//
//	for i, x := range tail.All() {
//	    fmt.Println(i, x)
//	}
//
// Views with sizes fixed by type are built with package view directly:
//
//	v := view.New[layout.N15, layout.N2](buf100)
//	head := view.FirstN[layout.N5](v) // View[int, N5, N2]
//
// Fields of fixed-size binary records are read with Column:
//
//	temps, err := strided.Column[float32](records,
//	    record.WithRecordSize(16),
//	    record.WithFieldOffset(8),
//	)
//
// # Package Structure
//
// This package provides convenient wrappers around packages view and record.
// For full control over parameter types, use those packages directly.
package strided

import (
	"github.com/arloliu/strided/endian"
	"github.com/arloliu/strided/layout"
	"github.com/arloliu/strided/record"
	"github.com/arloliu/strided/view"
)

// Of returns a contiguous view of buf with a dynamic extent.
func Of[T any](buf []T) view.View[T, layout.Dynamic, layout.N1] {
	return view.New[layout.Dynamic, layout.N1](buf)
}

// Every returns a view of every k-th element of buf, starting with the
// first. A negative k starts with the last element and walks backwards.
func Every[T any](buf []T, k int) view.View[T, layout.Dynamic, layout.Dynamic] {
	return view.NewStrided[layout.Dynamic](buf, k)
}

// Backward returns a view of buf in reverse order.
func Backward[T any](buf []T) view.View[T, layout.Dynamic, layout.Neg1] {
	return view.New[layout.Dynamic, layout.Neg1](buf)
}

// Column returns a typed column over the records in buf.
// See record.NewColumn for the available options and errors.
func Column[T endian.Number](buf []byte, opts ...record.ColumnOption) (record.Column[T], error) {
	return record.NewColumn[T](buf, opts...)
}
