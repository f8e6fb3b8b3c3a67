package view

import "github.com/arloliu/strided/layout"

// First returns a view of the first n elements. n must not exceed Size().
func (v View[T, E, S]) First(n int) View[T, layout.Dynamic, S] {
	return build[layout.Dynamic, S](v.data, v.base, n, v.Stride())
}

// Last returns a view of the last n elements. n must not exceed Size().
func (v View[T, E, S]) Last(n int) View[T, layout.Dynamic, S] {
	stride := v.Stride()
	return build[layout.Dynamic, S](v.data, v.base+(v.Size()-n)*stride, n, stride)
}

// DropFirst returns a view without the first n elements. n must not exceed
// Size().
func (v View[T, E, S]) DropFirst(n int) View[T, layout.Dynamic, S] {
	stride := v.Stride()
	return build[layout.Dynamic, S](v.data, v.base+n*stride, v.Size()-n, stride)
}

// DropLast returns a view without the last n elements. n must not exceed
// Size().
func (v View[T, E, S]) DropLast(n int) View[T, layout.Dynamic, S] {
	return build[layout.Dynamic, S](v.data, v.base, v.Size()-n, v.Stride())
}

// Skip returns a view of every k-th element, starting with the first.
// The result has extent ceil(Size()/k) and stride Stride()*k. k must be at
// least 1.
func (v View[T, E, S]) Skip(k int) View[T, layout.Dynamic, layout.Dynamic] {
	return build[layout.Dynamic, layout.Dynamic](v.data, v.base, (v.Size()+k-1)/k, v.Stride()*k)
}

// Reverse returns a view of the same elements in the opposite order.
func (v View[T, E, S]) Reverse() View[T, E, layout.Dynamic] {
	stride := v.Stride()
	return build[E, layout.Dynamic](v.data, v.base+(v.Size()-1)*stride, v.Size(), -stride)
}

// FirstN is First with the count given by the static parameter N. The
// result carries N as its extent.
func FirstN[N layout.Static, T any, E, S layout.Param](v View[T, E, S]) View[T, N, S] {
	return build[N, S](v.data, v.base, 0, v.Stride())
}

// LastN is Last with the count given by the static parameter N. The result
// carries N as its extent.
func LastN[N layout.Static, T any, E, S layout.Param](v View[T, E, S]) View[T, N, S] {
	var n N
	stride := v.Stride()

	return build[N, S](v.data, v.base+(v.Size()-n.Value())*stride, 0, stride)
}

// DropFirstN is DropFirst with the count given by N. The remaining extent
// cannot be named as a type, so it is dynamic; use Assert to pin it.
func DropFirstN[N layout.Static, T any, E, S layout.Param](v View[T, E, S]) View[T, layout.Dynamic, S] {
	var n N
	return v.DropFirst(n.Value())
}

// DropLastN is DropLast with the count given by N. The remaining extent is
// dynamic.
func DropLastN[N layout.Static, T any, E, S layout.Param](v View[T, E, S]) View[T, layout.Dynamic, S] {
	var n N
	return v.DropLast(n.Value())
}

// SkipN is Skip with the step given by K. The resulting extent and stride
// cannot be named as types, so both are dynamic; use Assert to pin them:
//
//	every := view.Assert[layout.N3, layout.N4](view.SkipN[layout.N2](head))
func SkipN[K layout.Static, T any, E, S layout.Param](v View[T, E, S]) View[T, layout.Dynamic, layout.Dynamic] {
	var k K
	return v.Skip(k.Value())
}
