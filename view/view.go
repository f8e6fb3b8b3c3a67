package view

import (
	"unsafe"

	"github.com/arloliu/strided/layout"
)

// View is a non-owning strided view over elements of type T with extent
// parameter E and stride parameter S.
//
// The zero value is an empty view when E is dynamic.
type View[T any, E, S layout.Param] struct {
	desc layout.Descriptor[E, S]
	data []T
	base int
}

// New creates a view over buf with a stride known from S.
//
// If E is dynamic the extent is ceil(len(buf) / |stride|); a static extent
// must not exceed what buf holds. A negative stride starts at the last
// element of buf and walks backwards.
func New[E layout.Param, S layout.Static, T any](buf []T) View[T, E, S] {
	var s S
	return fromSlice[E, S](buf, s.Value())
}

// NewStrided creates a view over buf with a stride chosen at runtime.
// The extent rules are the same as for New.
func NewStrided[E layout.Param, T any](buf []T, stride int) View[T, E, layout.Dynamic] {
	return fromSlice[E, layout.Dynamic](buf, stride)
}

// FromOffset creates a view whose first element is buf[first], holding count
// elements skip apart. Dynamic parameters take count and skip; static
// parameters keep their own values.
func FromOffset[E, S layout.Param, T any](buf []T, first, count, skip int) View[T, E, S] {
	return build[E, S](buf, first, count, skip)
}

// FromIterator creates a view whose first element is the element it refers
// to, holding count elements skip apart.
func FromIterator[E, S layout.Param, T any, E0, S0 layout.Param, D Direction](it Iterator[T, E0, S0, D], count, skip int) View[T, E, S] {
	return build[E, S](it.data, it.base+it.offset, count, skip)
}

// Convert returns v as a view with parameters E2 and S2. Each target
// parameter must be dynamic or equal to the static source parameter;
// Convert panics otherwise.
func Convert[E2, S2 layout.Param, T any, E, S layout.Param](v View[T, E, S]) View[T, E2, S2] {
	if !layout.Narrows[E2, E]() {
		panic("view: incompatible extent in Convert")
	}
	if !layout.Narrows[S2, S]() {
		panic("view: incompatible stride in Convert")
	}

	return build[E2, S2](v.data, v.base, v.Size(), v.Stride())
}

// Assert returns v as a view with parameters E2 and S2, checking static
// target parameters against the current runtime values. It panics when a
// static target disagrees with v.
//
// Assert is how a static size is recovered after a runtime-argument
// operation:
//
//	tail := view.Assert[layout.N10, layout.N2](v.DropFirst(5))
func Assert[E2, S2 layout.Param, T any, E, S layout.Param](v View[T, E, S]) View[T, E2, S2] {
	if !holds[E2](v.Size()) {
		panic("view: extent does not match asserted type")
	}
	if !holds[S2](v.Stride()) {
		panic("view: stride does not match asserted type")
	}

	return build[E2, S2](v.data, v.base, v.Size(), v.Stride())
}

func holds[P layout.Param](value int) bool {
	if layout.IsDynamic[P]() {
		return true
	}

	var p P

	return p.Value() == value
}

func fromSlice[E, S layout.Param, T any](buf []T, stride int) View[T, E, S] {
	step, base := stride, 0
	if stride < 0 {
		step = -stride
		if len(buf) > 0 {
			base = len(buf) - 1
		}
	}

	return build[E, S](buf, base, (len(buf)+step-1)/step, stride)
}

func build[E, S layout.Param, T any](data []T, base, extent, stride int) View[T, E, S] {
	v := View[T, E, S]{data: data, base: base}
	v.desc.SetExtentIfDynamic(extent).SetStrideIfDynamic(stride)

	return v
}

// Size returns the number of logical elements.
func (v View[T, E, S]) Size() int {
	return v.desc.Extent()
}

// Len is an alias for Size.
func (v View[T, E, S]) Len() int {
	return v.desc.Extent()
}

// Extent is an alias for Size.
func (v View[T, E, S]) Extent() int {
	return v.desc.Extent()
}

// Stride returns the distance, in elements of the backing slice, between
// consecutive logical elements.
func (v View[T, E, S]) Stride() int {
	return v.desc.Stride()
}

// Empty reports whether the view has no elements.
func (v View[T, E, S]) Empty() bool {
	return v.desc.Extent() == 0
}

// Descriptor returns the extent and stride descriptor.
func (v View[T, E, S]) Descriptor() layout.Descriptor[E, S] {
	return v.desc
}

// At returns logical element i.
func (v View[T, E, S]) At(i int) T {
	return v.data[v.base+v.desc.Stride()*i]
}

// Ptr returns a pointer to logical element i.
func (v View[T, E, S]) Ptr(i int) *T {
	return &v.data[v.base+v.desc.Stride()*i]
}

// Set stores x as logical element i.
func (v View[T, E, S]) Set(i int, x T) {
	v.data[v.base+v.desc.Stride()*i] = x
}

// Chunk returns the width contiguous elements of the backing slice starting
// at logical element i. The result aliases the backing slice and has its
// capacity clipped to width.
func (v View[T, E, S]) Chunk(i, width int) []T {
	start := v.base + v.desc.Stride()*i
	return v.data[start : start+width : start+width]
}

// Equal reports whether v and other address the same first element with the
// same extent and stride. Element contents are not compared.
func (v View[T, E, S]) Equal(other View[T, E, S]) bool {
	return v.Size() == other.Size() &&
		v.Stride() == other.Stride() &&
		v.addr() == other.addr()
}

// addr is the address of logical element 0. It is only compared, never
// dereferenced, so it may point outside the backing array.
func (v View[T, E, S]) addr() uintptr {
	var zero T
	return uintptr(unsafe.Pointer(unsafe.SliceData(v.data))) + uintptr(v.base)*unsafe.Sizeof(zero)
}
