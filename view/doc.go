// Package view provides View, a non-owning strided view over a Go slice.
//
// A View addresses logical element i at data[base + stride*i] of the slice
// it was built from. It never allocates, copies or frees the referenced
// buffer, and its extent and stride are carried either in its type (static
// parameters, zero storage) or in the value (dynamic parameters). See package
// layout for the parameter kinds.
//
// # Construction
//
//	buf := make([]int, 100)
//
//	// 15 elements, every 2nd element of buf, both known from the type.
//	v := view.New[layout.N15, layout.N2](buf)
//
//	// Extent computed from len(buf) and a stride chosen at runtime.
//	w := view.NewStrided[layout.Dynamic](buf, 3)
//
//	// Starting at buf[10], 5 elements, 4 apart.
//	x := view.FromOffset[layout.Dynamic, layout.Dynamic](buf, 10, 5, 4)
//
// # Sub-views
//
// First, Last, DropFirst, DropLast and Skip derive new views without
// touching the source. The runtime-argument forms are methods; the
// compile-time forms are functions taking the argument as a type:
//
//	head := view.FirstN[layout.N5](v) // View[int, N5, N2]
//	even := view.SkipN[layout.N2](head)
//
// Skip multiplies the stride, so decimations compose: Skip(2).Skip(3) has
// the same elements as Skip(6).
//
// # Traversal
//
// Views expose random-access iterators in both directions (Begin/End,
// RBegin/REnd) and Go range functions:
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Contract
//
// Like a plain slice expression, a View does no checking of its own:
// indexes outside [0, Size()), sub-view arguments larger than the extent and
// Skip(0) are caller errors. Accesses that land outside the backing slice
// panic through Go's own bounds checks. The only panics raised by this
// package are the compatibility assertions of Convert and Assert.
//
// A View is safe for concurrent readers. Writers to the referenced buffer
// must be synchronised by the caller, exactly as for the slice itself.
package view
