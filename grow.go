package tpack

// Store is a resizable character store the growth drivers operate on: a
// current size, the ability to resize to an exact size, and a view of the
// underlying storage. Resizing may reallocate, so views obtained before a
// resize are invalid afterwards. The drivers never lock; concurrent calls
// against the same store must be serialized by the caller.
type Store interface {
	Len() int
	Resize(n int)
	Bytes() []byte
}

// ByteStore adapts a plain byte slice to the Store interface. The zero value
// is an empty store ready for use.
type ByteStore struct {
	B []byte
}

func (s *ByteStore) Len() int { return len(s.B) }

func (s *ByteStore) Bytes() []byte { return s.B }

// Resize sets the length to exactly n bytes, reslicing within the current
// capacity when possible and reallocating otherwise. Existing content up to n
// is preserved.
func (s *ByteStore) Resize(n int) {
	if n <= cap(s.B) {
		s.B = s.B[:n]
		return
	}
	s.B = append(s.B, make([]byte, n-len(s.B))...)
}

// growFrom drives a fixed-buffer conversion against st starting at pos,
// resizing st so the result fits exactly, and returns the converted region.
//
// Measure, resize, retry: run the conversion against whatever room the store
// has; if it did not fit, resize to the reported need and run it once more.
// The first attempt's output is then truncated garbage that the second pass
// overwrites; resizing alone cannot fill in bytes that were never written.
// One retry is always enough, because the reported need covers every
// placement; needing more means a conversion broke its sizing contract.
func growFrom(st Store, pos int, convert func(buf []byte) int) []byte {
	n := convert(st.Bytes()[pos:])
	if n > st.Len()-pos {
		st.Resize(pos + n)
		again := convert(st.Bytes()[pos:])
		if again > st.Len()-pos {
			panic("tpack: conversion needed more room on retry than it measured")
		}
		n = again
	}
	st.Resize(pos + n)
	return st.Bytes()[pos : pos+n]
}

// CatTo replaces the content of st with the concatenation of args, growing or
// shrinking it to the exact result size. Returns a view of the content.
func CatTo(st Store, args ...any) []byte {
	return growFrom(st, 0, func(buf []byte) int { return Cat(buf, args...) })
}

// CatAppend appends the concatenation of args to st's current content, which
// is left untouched. Returns a view of just the appended region.
func CatAppend(st Store, args ...any) []byte {
	return growFrom(st, st.Len(), func(buf []byte) int { return Cat(buf, args...) })
}

// CatSepTo is CatSep against a resizable store, overwriting it.
func CatSepTo(st Store, sep any, args ...any) []byte {
	return growFrom(st, 0, func(buf []byte) int { return CatSep(buf, sep, args...) })
}

// CatSepAppend is CatSep against a resizable store, appending to it.
func CatSepAppend(st Store, sep any, args ...any) []byte {
	return growFrom(st, st.Len(), func(buf []byte) int { return CatSep(buf, sep, args...) })
}

// FormatTo is Format against a resizable store, overwriting it.
func FormatTo(st Store, format string, args ...any) []byte {
	return growFrom(st, 0, func(buf []byte) int { return Format(buf, format, args...) })
}

// FormatAppend is Format against a resizable store, appending to it.
func FormatAppend(st Store, format string, args ...any) []byte {
	return growFrom(st, st.Len(), func(buf []byte) int { return Format(buf, format, args...) })
}

// AppendCat appends the concatenation of args to dst, growing it as needed,
// and returns the extended slice, in the manner of strconv.AppendInt.
func AppendCat(dst []byte, args ...any) []byte {
	st := ByteStore{B: dst}
	CatAppend(&st, args...)
	return st.B
}

// AppendCatSep is AppendCat with a separator between arguments.
func AppendCatSep(dst []byte, sep any, args ...any) []byte {
	st := ByteStore{B: dst}
	CatSepAppend(&st, sep, args...)
	return st.B
}

// AppendFormat appends the formatted template to dst and returns the extended
// slice.
func AppendFormat(dst []byte, format string, args ...any) []byte {
	st := ByteStore{B: dst}
	FormatAppend(&st, format, args...)
	return st.B
}

// CatString allocates and returns the concatenation of args as a string.
func CatString(args ...any) string {
	var st ByteStore
	return string(CatTo(&st, args...))
}

// CatSepString allocates and returns the separated concatenation as a string.
func CatSepString(sep any, args ...any) string {
	var st ByteStore
	return string(CatSepTo(&st, sep, args...))
}

// FormatString allocates and returns the formatted template as a string.
func FormatString(format string, args ...any) string {
	var st ByteStore
	return string(FormatTo(&st, format, args...))
}
