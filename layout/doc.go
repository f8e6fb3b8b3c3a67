// Package layout describes the two size-like parameters of a strided view:
// the extent (number of logical elements) and the stride (distance between
// consecutive logical elements, measured in elements of the backing buffer).
//
// Each parameter is either static or dynamic:
//
//   - A static parameter is a type whose value is fixed by its Value method.
//     Static parameters are empty structs, so they occupy no storage.
//   - A dynamic parameter is the Dynamic type, which stores the value in a
//     single int resolved when a view is constructed.
//
// This gives four descriptor shapes, selected entirely by type arguments:
//
//	Descriptor[N4, N2]           // static extent, static stride: 0 bytes
//	Descriptor[Dynamic, N1]      // dynamic extent, static stride: 1 word
//	Descriptor[N8, Dynamic]      // static extent, dynamic stride
//	Descriptor[Dynamic, Dynamic] // both dynamic: 2 words
//
// # Custom Static Values
//
// The package predefines N0 through N16, N32, N64 and Neg1 through Neg4.
// Other values are declared by embedding Fixed:
//
//	type E15 struct{ layout.Fixed }
//
//	func (E15) Value() int { return 15 }
//
// Only types embedding Fixed satisfy Static, so APIs that need a value known
// at compile time (for example view.New, which must know the stride before
// it can compute an extent) reject Dynamic at compile time.
package layout
