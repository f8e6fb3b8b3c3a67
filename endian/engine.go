// Package endian provides byte order engines and fixed-width numeric codecs
// for reading values out of raw byte records.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so
// both binary.LittleEndian and binary.BigEndian satisfy it:
//
//	engine := endian.GetLittleEndianEngine()
//	v := endian.Load[float32](engine, record[4:8])
//	out = endian.Append(engine, out, v)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Number is the set of fixed-width numeric types the codecs support.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256; a little-endian host stores the 0x00 byte first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// SizeOf returns the encoded width of T in bytes.
func SizeOf[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// isFloat reports whether T has a floating-point underlying type.
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// Load decodes a T from the first SizeOf[T]() bytes of b.
func Load[T Number](engine EndianEngine, b []byte) T {
	if isFloat[T]() {
		if SizeOf[T]() == 4 {
			return T(math.Float32frombits(engine.Uint32(b)))
		}

		return T(math.Float64frombits(engine.Uint64(b)))
	}

	switch SizeOf[T]() {
	case 1:
		return T(b[0])
	case 2:
		return T(engine.Uint16(b))
	case 4:
		return T(engine.Uint32(b))
	default:
		return T(engine.Uint64(b))
	}
}

// Store encodes v into the first SizeOf[T]() bytes of b.
func Store[T Number](engine EndianEngine, b []byte, v T) {
	if isFloat[T]() {
		if SizeOf[T]() == 4 {
			engine.PutUint32(b, math.Float32bits(float32(v)))
		} else {
			engine.PutUint64(b, math.Float64bits(float64(v)))
		}

		return
	}

	switch SizeOf[T]() {
	case 1:
		b[0] = byte(v)
	case 2:
		engine.PutUint16(b, uint16(v))
	case 4:
		engine.PutUint32(b, uint32(v))
	default:
		engine.PutUint64(b, uint64(v))
	}
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append[T Number](engine EndianEngine, dst []byte, v T) []byte {
	if isFloat[T]() {
		if SizeOf[T]() == 4 {
			return engine.AppendUint32(dst, math.Float32bits(float32(v)))
		}

		return engine.AppendUint64(dst, math.Float64bits(float64(v)))
	}

	switch SizeOf[T]() {
	case 1:
		return append(dst, byte(v))
	case 2:
		return engine.AppendUint16(dst, uint16(v))
	case 4:
		return engine.AppendUint32(dst, uint32(v))
	default:
		return engine.AppendUint64(dst, uint64(v))
	}
}
