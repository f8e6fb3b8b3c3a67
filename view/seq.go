package view

import "iter"

// All returns an iterator over (index, element) pairs in forward order.
//
// Example:
//
//	for i, x := range v.All() {
//	    fmt.Printf("[%d] %v\n", i, x)
//	}
func (v View[T, E, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		stride := v.Stride()
		for i := range v.Size() {
			if !yield(i, v.data[v.base+stride*i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in forward order.
func (v View[T, E, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		stride := v.Stride()
		for i := range v.Size() {
			if !yield(v.data[v.base+stride*i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, element) pairs from the last
// element to the first. Indexes are those of the view, not of the
// traversal.
func (v View[T, E, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		stride := v.Stride()
		for i := v.Size() - 1; i >= 0; i-- {
			if !yield(i, v.data[v.base+stride*i]) {
				return
			}
		}
	}
}

// AppendTo appends the elements of v to dst and returns the extended slice.
func (v View[T, E, S]) AppendTo(dst []T) []T {
	stride := v.Stride()
	for i := range v.Size() {
		dst = append(dst, v.data[v.base+stride*i])
	}

	return dst
}

// CopyTo copies min(len(dst), Size()) elements into dst and returns the
// number copied.
func (v View[T, E, S]) CopyTo(dst []T) int {
	n := min(len(dst), v.Size())
	stride := v.Stride()
	for i := range n {
		dst[i] = v.data[v.base+stride*i]
	}

	return n
}
