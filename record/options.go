package record

import (
	"fmt"
	"reflect"

	"github.com/arloliu/strided/endian"
	"github.com/arloliu/strided/errs"
	"github.com/arloliu/strided/internal/options"
)

// ColumnConfig holds the layout of a column inside its records.
type ColumnConfig struct {
	recordSize  int
	fieldOffset int
	count       int
	countSet    bool
	engine      endian.EndianEngine
}

// ColumnOption configures a Column.
type ColumnOption = options.Option[*ColumnConfig]

// WithRecordSize sets the size, in bytes, of one record. It defaults to the
// width of the field, which describes a packed array of values.
func WithRecordSize(n int) ColumnOption {
	return options.New(func(c *ColumnConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidRecordSize, n)
		}
		c.recordSize = n

		return nil
	})
}

// WithFieldOffset sets the byte offset of the field inside each record.
func WithFieldOffset(n int) ColumnOption {
	return options.New(func(c *ColumnConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidFieldOffset, n)
		}
		c.fieldOffset = n

		return nil
	})
}

// WithCount limits the column to the first n records. Without it the column
// covers every record whose field fits in the buffer.
func WithCount(n int) ColumnOption {
	return options.New(func(c *ColumnConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCount, n)
		}
		c.count = n
		c.countSet = true

		return nil
	})
}

// WithLittleEndian decodes fields as little-endian. It is the default.
func WithLittleEndian() ColumnOption {
	return options.NoError(func(c *ColumnConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian decodes fields as big-endian.
func WithBigEndian() ColumnOption {
	return options.NoError(func(c *ColumnConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian decodes fields in the host byte order.
func WithNativeEndian() ColumnOption {
	return options.NoError(func(c *ColumnConfig) {
		c.engine = endian.GetNativeEngine()
	})
}

// WithByteOrder decodes fields with the given engine. The engine's type must
// be comparable.
func WithByteOrder(engine endian.EndianEngine) ColumnOption {
	return options.New(func(c *ColumnConfig) error {
		if engine == nil {
			return errs.ErrNilByteOrder
		}
		if !reflect.TypeOf(engine).Comparable() {
			return fmt.Errorf("%w: %T", errs.ErrUncomparableByteOrder, engine)
		}
		c.engine = engine

		return nil
	})
}

// resolve fills defaults and checks the layout against a buffer of bufLen
// bytes for a field of the given width. It returns the record count.
func (c *ColumnConfig) resolve(bufLen, width int) (int, error) {
	if c.engine == nil {
		c.engine = endian.GetLittleEndianEngine()
	}
	if c.recordSize == 0 {
		c.recordSize = width
	}
	if c.recordSize < width {
		return 0, fmt.Errorf("%w: %d bytes cannot hold a %d-byte field",
			errs.ErrInvalidRecordSize, c.recordSize, width)
	}
	if c.fieldOffset+width > c.recordSize {
		return 0, fmt.Errorf("%w: field [%d, %d) overruns %d-byte record",
			errs.ErrInvalidFieldOffset, c.fieldOffset, c.fieldOffset+width, c.recordSize)
	}

	available := 0
	if bufLen >= c.fieldOffset+width {
		available = (bufLen-c.fieldOffset-width)/c.recordSize + 1
	}

	if !c.countSet {
		return available, nil
	}
	if c.count > available {
		return 0, fmt.Errorf("%w: %d requested, buffer holds %d",
			errs.ErrInvalidCount, c.count, available)
	}

	return c.count, nil
}
