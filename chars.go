package tpack

import (
	"reflect"

	"go.hasen.dev/generic"
)

// NotFound is returned by every parsing operation when the input does not
// contain a valid representation of the requested value. It is distinct from
// any valid consumed-character count.
const NotFound = -1

// CharWriter is the serializing half of the customization point. WriteChars
// writes the text form of the value into buf, writing at most
// min(len(buf), required) bytes, and returns the required size. The required
// size must not depend on len(buf): calling WriteChars twice with the same
// undersized buffer must report the same size both times, which is what lets
// the engines keep exact totals after a buffer runs out.
type CharWriter interface {
	WriteChars(buf []byte) int
}

// CharReader is the parsing half of the customization point. ReadChars parses
// the value from the front of buf and returns the number of characters
// consumed, or NotFound.
type CharReader interface {
	ReadChars(buf []byte) int
}

type anyWriteFn func(buf []byte, v any) int
type anyReadFn func(buf []byte, v any) int

// Conversion tables for types that can't implement CharWriter/CharReader
// themselves. Guarded by nothing: register before use, normally from init.
var customWriters map[reflect.Type]anyWriteFn
var customReaders map[reflect.Type]anyReadFn

// RegisterFormat installs write and read conversions for a type you don't
// own and therefore can't attach the CharWriter/CharReader methods to.
// Either function may be nil to register only one direction. Registration is
// not synchronized; do it before any conversion runs, typically from init.
func RegisterFormat[T any](write func(buf []byte, v T) int, read func(buf []byte, v *T) int) {
	if write != nil {
		generic.InitMap(&customWriters)
		customWriters[reflect.TypeOf((*T)(nil)).Elem()] = func(buf []byte, v any) int {
			return write(buf, v.(T))
		}
	}
	if read != nil {
		generic.InitMap(&customReaders)
		customReaders[reflect.TypeOf((*T)(nil)).Elem()] = func(buf []byte, v any) int {
			return read(buf, v.(*T))
		}
	}
}

// writeChars converts one value to text. Dispatch order: the CharWriter
// interface, then built-in types (values or pointers), then registered
// conversions. An unsupported type is a programming error and panics; in a
// statically dispatched design it would not have compiled.
func writeChars(buf []byte, v any) int {
	switch v := v.(type) {
	case CharWriter:
		return v.WriteChars(buf)
	case string:
		return writeLiteral(buf, v)
	case []byte:
		copy(buf, v)
		return len(v)
	case bool:
		if v {
			return writeLiteral(buf, "true")
		}
		return writeLiteral(buf, "false")
	case int:
		return itoa(buf, int64(v), 10)
	case int8:
		return itoa(buf, int64(v), 10)
	case int16:
		return itoa(buf, int64(v), 10)
	case int32:
		return itoa(buf, int64(v), 10)
	case int64:
		return itoa(buf, v, 10)
	case uint:
		return utoa(buf, uint64(v), 10)
	case uint8:
		return utoa(buf, uint64(v), 10)
	case uint16:
		return utoa(buf, uint64(v), 10)
	case uint32:
		return utoa(buf, uint64(v), 10)
	case uint64:
		return utoa(buf, v, 10)
	case uintptr:
		return utoa(buf, uint64(v), 10)
	case float32:
		return ftoa(buf, float64(v), -1, 'g', 32)
	case float64:
		return ftoa(buf, v, -1, 'g', 64)
	case *string:
		return writeLiteral(buf, *v)
	case *[]byte:
		copy(buf, *v)
		return len(*v)
	case *bool:
		return writeChars(buf, *v)
	case *int:
		return itoa(buf, int64(*v), 10)
	case *int8:
		return itoa(buf, int64(*v), 10)
	case *int16:
		return itoa(buf, int64(*v), 10)
	case *int32:
		return itoa(buf, int64(*v), 10)
	case *int64:
		return itoa(buf, *v, 10)
	case *uint:
		return utoa(buf, uint64(*v), 10)
	case *uint8:
		return utoa(buf, uint64(*v), 10)
	case *uint16:
		return utoa(buf, uint64(*v), 10)
	case *uint32:
		return utoa(buf, uint64(*v), 10)
	case *uint64:
		return utoa(buf, *v, 10)
	case *uintptr:
		return utoa(buf, uint64(*v), 10)
	case *float32:
		return ftoa(buf, float64(*v), -1, 'g', 32)
	case *float64:
		return ftoa(buf, *v, -1, 'g', 64)
	}
	if fn, ok := customWriters[reflect.TypeOf(v)]; ok {
		return fn(buf, v)
	}
	panic("tpack: no text writer for type " + typeName(v))
}

// readChars parses one value from the front of buf. Outputs must be pointers;
// same dispatch order as writeChars.
func readChars(buf []byte, v any) int {
	switch v := v.(type) {
	case CharReader:
		return v.ReadChars(buf)
	case *string:
		n := tokenLen(buf)
		if n == 0 {
			return NotFound
		}
		*v = string(buf[:n])
		return n
	case *[]byte:
		n := tokenLen(buf)
		if n == 0 {
			return NotFound
		}
		*v = append([]byte(nil), buf[:n]...)
		return n
	case *bool:
		return readBool(buf, v, false)
	case *int:
		return readInt(buf, v, 10, 0)
	case *int8:
		return readInt(buf, v, 10, 8)
	case *int16:
		return readInt(buf, v, 10, 16)
	case *int32:
		return readInt(buf, v, 10, 32)
	case *int64:
		return readInt(buf, v, 10, 64)
	case *uint:
		return readUint(buf, v, 10, 0)
	case *uint8:
		return readUint(buf, v, 10, 8)
	case *uint16:
		return readUint(buf, v, 10, 16)
	case *uint32:
		return readUint(buf, v, 10, 32)
	case *uint64:
		return readUint(buf, v, 10, 64)
	case *uintptr:
		return readUint(buf, v, 10, 64)
	case *float32:
		return readFloat(buf, v, 32)
	case *float64:
		return readFloat(buf, v, 64)
	}
	if t := reflect.TypeOf(v); t != nil && t.Kind() == reflect.Pointer {
		if fn, ok := customReaders[t.Elem()]; ok {
			return fn(buf, v)
		}
	}
	panic("tpack: no text reader for type " + typeName(v))
}

func readInt[T SignedInt](buf []byte, v *T, radix, bitSize int) int {
	parsed, n := atoi(buf, radix, bitSize)
	if n == NotFound {
		return NotFound
	}
	*v = T(parsed)
	return n
}

func readUint[T UnsignedInt](buf []byte, v *T, radix, bitSize int) int {
	parsed, n := atou(buf, radix, bitSize)
	if n == NotFound {
		return NotFound
	}
	*v = T(parsed)
	return n
}

func readFloat[T AnyFloat](buf []byte, v *T, bitSize int) int {
	parsed, n := atof(buf, bitSize)
	if n == NotFound {
		return NotFound
	}
	*v = T(parsed)
	return n
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
