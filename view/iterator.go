package view

import (
	"cmp"

	"github.com/arloliu/strided/layout"
)

// Direction selects the traversal order of an Iterator. It is implemented
// only by Forward and Reverse.
type Direction interface {
	sign() int
}

// Forward iterates from the first logical element towards the last.
type Forward struct{}

func (Forward) sign() int { return 1 }

// Reverse iterates from the last logical element towards the first.
type Reverse struct{}

func (Reverse) sign() int { return -1 }

// Iterator is a random-access cursor over a View. It holds the view's base
// and descriptor plus an offset, measured in elements of the backing slice,
// from the view's first element.
//
// Stepping moves the offset by the stride in the direction D, so "next"
// always means next in iteration order. Comparisons look at the offset only
// and are meaningful only between iterators of the same view.
type Iterator[T any, E, S layout.Param, D Direction] struct {
	desc   layout.Descriptor[E, S]
	data   []T
	base   int
	offset int
}

func newIterator[D Direction, T any, E, S layout.Param](v View[T, E, S], offset int) Iterator[T, E, S, D] {
	return Iterator[T, E, S, D]{desc: v.desc, data: v.data, base: v.base, offset: offset}
}

// Begin returns a forward iterator at the first element.
func (v View[T, E, S]) Begin() Iterator[T, E, S, Forward] {
	return newIterator[Forward](v, 0)
}

// End returns a forward iterator one step past the last element.
func (v View[T, E, S]) End() Iterator[T, E, S, Forward] {
	return newIterator[Forward](v, v.Stride()*v.Size())
}

// RBegin returns a reverse iterator at the last element.
func (v View[T, E, S]) RBegin() Iterator[T, E, S, Reverse] {
	return newIterator[Reverse](v, v.Stride()*(v.Size()-1))
}

// REnd returns a reverse iterator one step before the first element.
func (v View[T, E, S]) REnd() Iterator[T, E, S, Reverse] {
	return newIterator[Reverse](v, -v.Stride())
}

// CBegin is Begin returning a read-only iterator.
func (v View[T, E, S]) CBegin() ConstIterator[T, E, S, Forward] {
	return v.Begin().Const()
}

// CEnd is End returning a read-only iterator.
func (v View[T, E, S]) CEnd() ConstIterator[T, E, S, Forward] {
	return v.End().Const()
}

// CRBegin is RBegin returning a read-only iterator.
func (v View[T, E, S]) CRBegin() ConstIterator[T, E, S, Reverse] {
	return v.RBegin().Const()
}

// CREnd is REnd returning a read-only iterator.
func (v View[T, E, S]) CREnd() ConstIterator[T, E, S, Reverse] {
	return v.REnd().Const()
}

func (it Iterator[T, E, S, D]) step() int {
	var d D
	return d.sign() * it.desc.Stride()
}

// Value returns the element the iterator refers to.
func (it Iterator[T, E, S, D]) Value() T {
	return it.data[it.base+it.offset]
}

// Ptr returns a pointer to the element the iterator refers to.
func (it Iterator[T, E, S, D]) Ptr() *T {
	return &it.data[it.base+it.offset]
}

// Set stores x in the element the iterator refers to.
func (it Iterator[T, E, S, D]) Set(x T) {
	it.data[it.base+it.offset] = x
}

// Index returns the element n steps away without moving the iterator.
func (it Iterator[T, E, S, D]) Index(n int) T {
	return it.data[it.base+it.offset+n*it.step()]
}

// Offset returns the raw offset from the view's first element.
func (it Iterator[T, E, S, D]) Offset() int {
	return it.offset
}

// Inc moves the iterator one step forward in its direction.
func (it *Iterator[T, E, S, D]) Inc() *Iterator[T, E, S, D] {
	it.offset += it.step()
	return it
}

// Dec moves the iterator one step back in its direction.
func (it *Iterator[T, E, S, D]) Dec() *Iterator[T, E, S, D] {
	it.offset -= it.step()
	return it
}

// PostInc moves the iterator one step forward and returns its prior value.
func (it *Iterator[T, E, S, D]) PostInc() Iterator[T, E, S, D] {
	prev := *it
	it.offset += it.step()

	return prev
}

// PostDec moves the iterator one step back and returns its prior value.
func (it *Iterator[T, E, S, D]) PostDec() Iterator[T, E, S, D] {
	prev := *it
	it.offset -= it.step()

	return prev
}

// Advance moves the iterator n steps forward in place.
func (it *Iterator[T, E, S, D]) Advance(n int) *Iterator[T, E, S, D] {
	it.offset += n * it.step()
	return it
}

// Retreat moves the iterator n steps back in place.
func (it *Iterator[T, E, S, D]) Retreat(n int) *Iterator[T, E, S, D] {
	it.offset -= n * it.step()
	return it
}

// Add returns an iterator n steps forward.
func (it Iterator[T, E, S, D]) Add(n int) Iterator[T, E, S, D] {
	it.offset += n * it.step()
	return it
}

// Sub returns an iterator n steps back.
func (it Iterator[T, E, S, D]) Sub(n int) Iterator[T, E, S, D] {
	it.offset -= n * it.step()
	return it
}

// Distance returns the number of steps from other to it.
func (it Iterator[T, E, S, D]) Distance(other Iterator[T, E, S, D]) int {
	return (it.offset - other.offset) / it.step()
}

// Equal reports whether both iterators have the same offset.
func (it Iterator[T, E, S, D]) Equal(other Iterator[T, E, S, D]) bool {
	return it.offset == other.offset
}

// Compare compares raw offsets, returning -1, 0 or +1.
func (it Iterator[T, E, S, D]) Compare(other Iterator[T, E, S, D]) int {
	return cmp.Compare(it.offset, other.offset)
}

// Less reports whether it has a smaller raw offset than other.
func (it Iterator[T, E, S, D]) Less(other Iterator[T, E, S, D]) bool {
	return it.offset < other.offset
}

// LessEqual reports whether it has a raw offset no larger than other.
func (it Iterator[T, E, S, D]) LessEqual(other Iterator[T, E, S, D]) bool {
	return it.offset <= other.offset
}

// Greater reports whether it has a larger raw offset than other.
func (it Iterator[T, E, S, D]) Greater(other Iterator[T, E, S, D]) bool {
	return it.offset > other.offset
}

// GreaterEqual reports whether it has a raw offset no smaller than other.
func (it Iterator[T, E, S, D]) GreaterEqual(other Iterator[T, E, S, D]) bool {
	return it.offset >= other.offset
}

// Const returns a read-only copy of the iterator.
func (it Iterator[T, E, S, D]) Const() ConstIterator[T, E, S, D] {
	return ConstIterator[T, E, S, D]{it: it}
}

// ConstIterator is an Iterator without write access to the referenced
// elements.
type ConstIterator[T any, E, S layout.Param, D Direction] struct {
	it Iterator[T, E, S, D]
}

// Value returns the referenced element.
func (c ConstIterator[T, E, S, D]) Value() T { return c.it.Value() }

// Index returns the element n steps from c.
func (c ConstIterator[T, E, S, D]) Index(n int) T { return c.it.Index(n) }

// Offset returns the raw offset from the view's first element.
func (c ConstIterator[T, E, S, D]) Offset() int { return c.it.offset }

// Inc moves c one step forward and returns it.
func (c *ConstIterator[T, E, S, D]) Inc() *ConstIterator[T, E, S, D] {
	c.it.Inc()
	return c
}

// Dec moves c one step back and returns it.
func (c *ConstIterator[T, E, S, D]) Dec() *ConstIterator[T, E, S, D] {
	c.it.Dec()
	return c
}

// PostInc moves c one step forward and returns its previous position.
func (c *ConstIterator[T, E, S, D]) PostInc() ConstIterator[T, E, S, D] {
	return ConstIterator[T, E, S, D]{it: c.it.PostInc()}
}

// PostDec moves c one step back and returns its previous position.
func (c *ConstIterator[T, E, S, D]) PostDec() ConstIterator[T, E, S, D] {
	return ConstIterator[T, E, S, D]{it: c.it.PostDec()}
}

// Advance moves c n steps forward and returns it.
func (c *ConstIterator[T, E, S, D]) Advance(n int) *ConstIterator[T, E, S, D] {
	c.it.Advance(n)
	return c
}

// Retreat moves c n steps back and returns it.
func (c *ConstIterator[T, E, S, D]) Retreat(n int) *ConstIterator[T, E, S, D] {
	c.it.Retreat(n)
	return c
}

// Add returns an iterator n steps after c.
func (c ConstIterator[T, E, S, D]) Add(n int) ConstIterator[T, E, S, D] {
	return ConstIterator[T, E, S, D]{it: c.it.Add(n)}
}

// Sub returns an iterator n steps before c.
func (c ConstIterator[T, E, S, D]) Sub(n int) ConstIterator[T, E, S, D] {
	return ConstIterator[T, E, S, D]{it: c.it.Sub(n)}
}

// Distance returns the number of steps from other to c.
func (c ConstIterator[T, E, S, D]) Distance(other ConstIterator[T, E, S, D]) int {
	return c.it.Distance(other.it)
}

// Equal reports whether both iterators have the same offset.
func (c ConstIterator[T, E, S, D]) Equal(other ConstIterator[T, E, S, D]) bool {
	return c.it.Equal(other.it)
}

// Compare compares raw offsets, returning -1, 0 or +1.
func (c ConstIterator[T, E, S, D]) Compare(other ConstIterator[T, E, S, D]) int {
	return c.it.Compare(other.it)
}

// Less reports whether c has a smaller raw offset than other.
func (c ConstIterator[T, E, S, D]) Less(other ConstIterator[T, E, S, D]) bool {
	return c.it.Less(other.it)
}

// LessEqual reports whether c has a raw offset no larger than other.
func (c ConstIterator[T, E, S, D]) LessEqual(other ConstIterator[T, E, S, D]) bool {
	return c.it.LessEqual(other.it)
}

// Greater reports whether c has a larger raw offset than other.
func (c ConstIterator[T, E, S, D]) Greater(other ConstIterator[T, E, S, D]) bool {
	return c.it.Greater(other.it)
}

// GreaterEqual reports whether c has a raw offset no smaller than other.
func (c ConstIterator[T, E, S, D]) GreaterEqual(other ConstIterator[T, E, S, D]) bool {
	return c.it.GreaterEqual(other.it)
}
