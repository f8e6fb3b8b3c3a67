package record

import (
	"iter"

	"github.com/arloliu/strided/endian"
	"github.com/arloliu/strided/internal/hash"
	"github.com/arloliu/strided/internal/options"
	"github.com/arloliu/strided/internal/pool"
	"github.com/arloliu/strided/layout"
	"github.com/arloliu/strided/view"
)

// byteView is the untyped view a Column decodes through. Its base is the
// field offset of record 0 and its stride is the record size.
type byteView = view.View[byte, layout.Dynamic, layout.Dynamic]

// Column is a typed strided view of one fixed-width field across an array of
// records. It references the buffer it was built from and never copies it.
type Column[T endian.Number] struct {
	v      byteView
	engine endian.EndianEngine
}

// NewColumn creates a column over buf.
//
// Returns an error wrapping errs.ErrInvalidRecordSize,
// errs.ErrInvalidFieldOffset or errs.ErrInvalidCount when the layout does
// not fit the buffer.
func NewColumn[T endian.Number](buf []byte, opts ...ColumnOption) (Column[T], error) {
	cfg := &ColumnConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return Column[T]{}, err
	}

	count, err := cfg.resolve(len(buf), endian.SizeOf[T]())
	if err != nil {
		return Column[T]{}, err
	}

	return Column[T]{
		v:      view.FromOffset[layout.Dynamic, layout.Dynamic](buf, cfg.fieldOffset, count, cfg.recordSize),
		engine: cfg.engine,
	}, nil
}

// View returns the underlying byte view. Element i of the view is the first
// byte of the field in record i.
func (c Column[T]) View() view.View[byte, layout.Dynamic, layout.Dynamic] {
	return c.v
}

// Len returns the number of records in the column.
func (c Column[T]) Len() int {
	return c.v.Size()
}

// Stride returns the signed distance in bytes between consecutive fields.
func (c Column[T]) Stride() int {
	return c.v.Stride()
}

// ByteOrder returns the engine used to decode fields.
func (c Column[T]) ByteOrder() endian.EndianEngine {
	return c.engine
}

// At decodes the field of record i.
func (c Column[T]) At(i int) T {
	return endian.Load[T](c.engine, c.v.Chunk(i, endian.SizeOf[T]()))
}

// Set encodes x into the field of record i.
func (c Column[T]) Set(i int, x T) {
	endian.Store(c.engine, c.v.Chunk(i, endian.SizeOf[T]()), x)
}

// All returns an iterator over (index, value) pairs.
func (c Column[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		width := endian.SizeOf[T]()
		for i := range c.v.Size() {
			if !yield(i, endian.Load[T](c.engine, c.v.Chunk(i, width))) {
				return
			}
		}
	}
}

// Values returns an iterator over the decoded values.
func (c Column[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range c.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// AppendTo appends the decoded values to dst and returns the extended slice.
func (c Column[T]) AppendTo(dst []T) []T {
	for _, x := range c.All() {
		dst = append(dst, x)
	}

	return dst
}

// First returns a column of the first n records.
func (c Column[T]) First(n int) Column[T] {
	return Column[T]{v: c.v.First(n), engine: c.engine}
}

// Last returns a column of the last n records.
func (c Column[T]) Last(n int) Column[T] {
	return Column[T]{v: c.v.Last(n), engine: c.engine}
}

// DropFirst returns a column without the first n records.
func (c Column[T]) DropFirst(n int) Column[T] {
	return Column[T]{v: c.v.DropFirst(n), engine: c.engine}
}

// DropLast returns a column without the last n records.
func (c Column[T]) DropLast(n int) Column[T] {
	return Column[T]{v: c.v.DropLast(n), engine: c.engine}
}

// Skip returns a column of every k-th record.
func (c Column[T]) Skip(k int) Column[T] {
	return Column[T]{v: c.v.Skip(k), engine: c.engine}
}

// Reverse returns the column in reverse record order.
func (c Column[T]) Reverse() Column[T] {
	return Column[T]{v: c.v.Reverse(), engine: c.engine}
}

// Equal reports whether both columns address the same fields with the same
// byte order.
func (c Column[T]) Equal(other Column[T]) bool {
	return c.engine == other.engine && c.v.Equal(other.v)
}

// Digest returns the xxHash64 of the column's values encoded little-endian
// in order. Columns holding the same values have the same digest regardless
// of record layout or source byte order.
func (c Column[T]) Digest() uint64 {
	le := endian.GetLittleEndianEngine()

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	var d *hash.Digest
	for _, x := range c.All() {
		scratch.B = endian.Append(le, scratch.B, x)
		if scratch.Len() >= pool.ScratchBufferDefaultSize {
			if d == nil {
				d = hash.NewDigest()
			}
			_, _ = d.Write(scratch.Bytes())
			scratch.Reset()
		}
	}

	// Columns that fit in one scratch buffer skip the streaming digest.
	if d == nil {
		return hash.Sum64(scratch.Bytes())
	}
	_, _ = d.Write(scratch.Bytes())

	return d.Sum64()
}
