// Package record reads fixed-width numeric fields out of arrays of
// fixed-size binary records without copying them.
//
// A Column is a typed strided view over a []byte buffer: its base is the
// field offset inside the first record and its stride is the record size, so
// element i decodes the field of record i. All of the view sub-range
// operations are available and return columns sharing the same buffer.
//
//	// 16-byte records: uint64 id at offset 0, float32 temperature at 8,
//	// uint32 flags at 12.
//	temps, err := record.NewColumn[float32](buf,
//	    record.WithRecordSize(16),
//	    record.WithFieldOffset(8),
//	)
//	if err != nil {
//	    return err
//	}
//	for i, t := range temps.All() {
//	    fmt.Println(i, t)
//	}
//
// Unlike the views in package view, a Column validates its layout at
// construction and reports problems through errors from package errs.
// Element access after construction is unchecked beyond Go's slice bounds.
package record
