package tpack

import "bytes"

// advance returns the portion of buf that follows a conversion needing n
// characters. Once a conversion did not fit, the rest of the operation runs
// against an empty view: nothing more is written, but every conversion still
// reports its required size, so the accumulated total stays exact.
func advance(buf []byte, n int) []byte {
	if n <= len(buf) {
		return buf[n:]
	}
	return nil
}

// Cat writes the text form of each argument back to back into buf. The buffer
// length is strictly respected: no write occurs past its end. Returns the
// number of characters the complete result needs, which exceeds len(buf) when
// the buffer was too small.
func Cat(buf []byte, args ...any) int {
	num := 0
	for _, a := range args {
		n := writeChars(buf, a)
		buf = advance(buf, n)
		num += n
	}
	return num
}

// CatSub is like Cat but returns the written region of buf. When the result
// did not fit, the region is the whole buffer and holds a truncated prefix of
// the result; call Cat directly when you need to detect that.
func CatSub(buf []byte, args ...any) []byte {
	return clampSub(buf, Cat(buf, args...))
}

// Uncat parses each argument from buf in order. Arguments must be pointers,
// wrappers, or CharReader values. Returns the number of characters consumed,
// or NotFound as soon as one argument fails to parse; arguments after the
// failing one are left untouched, and values parsed before it are kept.
func Uncat(buf []byte, args ...any) int {
	num := 0
	for _, a := range args {
		n := readChars(buf, a)
		if n == NotFound {
			return NotFound
		}
		buf = advance(buf, n)
		num += n
	}
	return num
}

// CatSep is like Cat but writes sep's text form before every argument except
// the first. The separator goes through the same conversion point as the
// arguments, so it can be any formattable value. Zero or one arguments write
// no separator at all.
func CatSep(buf []byte, sep any, args ...any) int {
	num := 0
	for i, a := range args {
		if i > 0 {
			n := writeChars(buf, sep)
			buf = advance(buf, n)
			num += n
		}
		n := writeChars(buf, a)
		buf = advance(buf, n)
		num += n
	}
	return num
}

// CatSepSub is CatSep in the trimmed-view shape of CatSub.
func CatSepSub(buf []byte, sep any, args ...any) []byte {
	return clampSub(buf, CatSep(buf, sep, args...))
}

// UncatSep parses each argument from buf, expecting the separator between
// every pair. A separator that implements CharReader is parsed at each
// expected position; any other separator is rendered once and its text must
// recur verbatim. A missing separator fails the whole operation with
// NotFound.
func UncatSep(buf []byte, sep any, args ...any) int {
	var sepText []byte
	sepReader, dynamic := sep.(CharReader)
	if !dynamic && len(args) > 1 {
		sepText = renderOne(sep)
	}
	num := 0
	for i, a := range args {
		if i > 0 {
			var n int
			if dynamic {
				n = sepReader.ReadChars(buf)
				if n == NotFound {
					return NotFound
				}
			} else {
				if !bytes.HasPrefix(buf, sepText) {
					return NotFound
				}
				n = len(sepText)
			}
			buf = advance(buf, n)
			num += n
		}
		n := readChars(buf, a)
		if n == NotFound {
			return NotFound
		}
		buf = advance(buf, n)
		num += n
	}
	return num
}

// renderOne converts a single value to freshly allocated text, measuring
// against an empty buffer first.
func renderOne(v any) []byte {
	text := make([]byte, writeChars(nil, v))
	writeChars(text, v)
	return text
}

func clampSub(buf []byte, n int) []byte {
	if n > len(buf) {
		n = len(buf)
	}
	return buf[:n]
}
