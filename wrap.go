package tpack

import (
	"reflect"
	"unsafe"
)

type SignedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UnsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type AnyInt interface {
	SignedInt | UnsignedInt
}

type AnyFloat interface {
	~float32 | ~float64
}

// Wrappers attach formatting policy to a value before it reaches the
// conversion point. They hold a pointer to the caller's variable, which is
// what makes one wrapper serve both serialization and parsing; they own
// nothing and must not outlive the variable they point at.

// BoolWord formats a bool as the word "true" or "false".
type BoolWord struct {
	V      *bool
	Strict bool
}

// Boolalpha marks a bool to be converted as the word "true" or "false".
// With strict set, parsing accepts only those exact words; otherwise the
// lenient forms accepted for a plain bool work too.
func Boolalpha(v *bool, strict bool) BoolWord {
	return BoolWord{V: v, Strict: strict}
}

func (w BoolWord) WriteChars(buf []byte) int {
	if *w.V {
		return writeLiteral(buf, "true")
	}
	return writeLiteral(buf, "false")
}

func (w BoolWord) ReadChars(buf []byte) int {
	return readBool(buf, w.V, w.Strict)
}

// IntWrap formats an integer in a specific radix. Signed and unsigned widths
// go through their own conversion, selected by the type parameter.
type IntWrap[T AnyInt] struct {
	V     *T
	Radix int
}

// Integral marks an integer to be converted in the given radix, 2 to 36.
// Any radix outside that range is a contract breach and panics.
func Integral[T AnyInt](v *T, radix int) IntWrap[T] {
	if radix < 2 || radix > 36 {
		panic("tpack: radix must be between 2 and 36")
	}
	return IntWrap[T]{V: v, Radix: radix}
}

// Hex marks an integer for base 16 conversion.
func Hex[T AnyInt](v *T) IntWrap[T] { return IntWrap[T]{V: v, Radix: 16} }

// Oct marks an integer for base 8 conversion.
func Oct[T AnyInt](v *T) IntWrap[T] { return IntWrap[T]{V: v, Radix: 8} }

// Bin marks an integer for base 2 conversion.
func Bin[T AnyInt](v *T) IntWrap[T] { return IntWrap[T]{V: v, Radix: 2} }

func (w IntWrap[T]) WriteChars(buf []byte) int {
	if isSigned[T]() {
		return itoa(buf, int64(*w.V), w.Radix)
	}
	return utoa(buf, uint64(*w.V), w.Radix)
}

func (w IntWrap[T]) ReadChars(buf []byte) int {
	if isSigned[T]() {
		parsed, n := atoi(buf, w.Radix, bitSizeOf[T]())
		if n == NotFound {
			return NotFound
		}
		*w.V = T(parsed)
		return n
	}
	parsed, n := atou(buf, w.Radix, bitSizeOf[T]())
	if n == NotFound {
		return NotFound
	}
	*w.V = T(parsed)
	return n
}

func isSigned[T AnyInt]() bool {
	var zero T
	return zero-1 < zero
}

func bitSizeOf[T AnyInt]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// PtrWrap formats a pointer's address as an unsigned integer. Write only:
// there is nothing sensible to parse an address back into.
type PtrWrap struct {
	Addr  uintptr
	Radix int
}

// Ptr normalizes a pointer value, or nil, to its address so that pointers
// share the integer conversion path. The default radix is 16, without a 0x
// prefix; set Radix for octal, binary or decimal addresses.
func Ptr(p any) PtrWrap {
	return PtrWrap{Addr: addrOf(p), Radix: 16}
}

func addrOf(p any) uintptr {
	if p == nil {
		return 0
	}
	rv := reflect.ValueOf(p)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return rv.Pointer()
	}
	panic("tpack: Ptr requires a pointer value, got " + typeName(p))
}

func (w PtrWrap) WriteChars(buf []byte) int {
	return utoa(buf, uint64(w.Addr), w.Radix)
}

// Notation selects the rendering style for floating point values.
type Notation int

//go:generate go tool stringer -type=Notation -output=notation_string.go

const (
	Shortest   Notation = iota // shortest form that parses back to the same value
	Fixed                      // decimal point, no exponent
	Scientific                 // e notation
)

// FloatWrap formats a floating point value with explicit precision and
// notation.
type FloatWrap[T AnyFloat] struct {
	V         *T
	Precision int // digits after the point (Fixed/Scientific) or significant digits (Shortest); negative picks the shortest form
	Style     Notation
}

// Real marks a floating point value to be converted with the given precision
// and notation.
func Real[T AnyFloat](v *T, precision int, style Notation) FloatWrap[T] {
	return FloatWrap[T]{V: v, Precision: precision, Style: style}
}

func (w FloatWrap[T]) verb() byte {
	switch w.Style {
	case Fixed:
		return 'f'
	case Scientific:
		return 'e'
	}
	return 'g'
}

func (w FloatWrap[T]) WriteChars(buf []byte) int {
	return ftoa(buf, float64(*w.V), w.Precision, w.verb(), int(unsafe.Sizeof(*w.V))*8)
}

func (w FloatWrap[T]) ReadChars(buf []byte) int {
	parsed, n := atof(buf, int(unsafe.Sizeof(*w.V))*8)
	if n == NotFound {
		return NotFound
	}
	*w.V = T(parsed)
	return n
}

// RawBytes marks a region to be copied byte for byte instead of rendered as
// text. The payload lands at the next destination address that is a multiple
// of Align; the skipped bytes are zeroed padding. Sizing therefore depends on
// where in memory the destination sits: against a buffer it does not fit in,
// the worst case Align+len is reported so a single resize is always enough.
type RawBytes struct {
	B     []byte
	Align int
}

// Raw builds a RawBytes wrapper around b. align must be a power of two;
// anything else is a contract breach and panics before any buffer is touched.
func Raw(b []byte, align int) RawBytes {
	if align <= 0 || align&(align-1) != 0 {
		panic("tpack: raw alignment must be a power of two")
	}
	return RawBytes{B: b, Align: align}
}

func (w RawBytes) pad(buf []byte) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return int(-addr) & (w.Align - 1)
}

func (w RawBytes) WriteChars(buf []byte) int {
	if len(buf) == 0 {
		return w.Align + len(w.B)
	}
	pad := w.pad(buf)
	need := pad + len(w.B)
	if need > len(buf) {
		// Report the worst case over all placements, so that a store resized
		// to this size fits the payload wherever its new allocation lands.
		return w.Align + len(w.B)
	}
	for i := 0; i < pad; i++ {
		buf[i] = 0
	}
	copy(buf[pad:], w.B)
	return need
}

func (w RawBytes) ReadChars(buf []byte) int {
	if len(buf) == 0 {
		if len(w.B) == 0 {
			return 0
		}
		return NotFound
	}
	pad := w.pad(buf)
	if pad+len(w.B) > len(buf) {
		return NotFound
	}
	copy(w.B, buf[pad:pad+len(w.B)])
	return pad + len(w.B)
}
