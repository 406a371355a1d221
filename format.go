package tpack

import "strings"

// The placeholder token. Template text is scanned left to right, one token
// per argument, and is never rescanned after a token is consumed.
const placeholder = "{}"

// Format writes the template into buf, substituting the text form of one
// argument for each {} token, left to right. Arguments beyond the last token
// are silently ignored. Tokens beyond the last argument are not an error
// either: whatever remains of the template is copied as literal text. Returns
// the number of characters the complete result needs.
//
//	tpack.Format(buf, "the {} drank {} {}", "partier", 5, "beers")
//	// the partier drank 5 beers
func Format(buf []byte, format string, args ...any) int {
	num := 0
	for _, a := range args {
		pos := strings.Index(format, placeholder)
		if pos < 0 {
			break
		}
		n := writeLiteral(buf, format[:pos])
		buf = advance(buf, n)
		num += n
		n = writeChars(buf, a)
		buf = advance(buf, n)
		num += n
		format = format[pos+len(placeholder):]
	}
	return num + writeLiteral(buf, format)
}

// FormatSub is Format in the trimmed-view shape of CatSub.
func FormatSub(buf []byte, format string, args ...any) []byte {
	return clampSub(buf, Format(buf, format, args...))
}

// Unformat parses one argument from buf at each {} token of the template.
// The literal spans between tokens are skipped without being compared against
// the input; only token positions consume parsed values. The literal tail
// after the last consumed token is not counted. Returns the number of
// characters consumed, or NotFound as soon as an argument fails to parse.
func Unformat(buf []byte, format string, args ...any) int {
	num := 0
	for _, a := range args {
		pos := strings.Index(format, placeholder)
		if pos < 0 {
			break
		}
		buf = advance(buf, pos)
		num += pos
		n := readChars(buf, a)
		if n == NotFound {
			return NotFound
		}
		buf = advance(buf, n)
		num += n
		format = format[pos+len(placeholder):]
	}
	return num
}
