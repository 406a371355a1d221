package tpack

import "strconv"

// The low level text conversions. Each writer copies at most len(buf) bytes
// and returns the full required size; each scanner consumes the longest valid
// prefix and reports how much it took, or NotFound.

// writeLiteral copies s into buf, truncating to the buffer, and returns the
// size s needs.
func writeLiteral(buf []byte, s string) int {
	copy(buf, s)
	return len(s)
}

func itoa(buf []byte, v int64, radix int) int {
	var tmp [65]byte // worst case: base 2, 64 digits and a sign
	s := strconv.AppendInt(tmp[:0], v, radix)
	copy(buf, s)
	return len(s)
}

func utoa(buf []byte, v uint64, radix int) int {
	var tmp [64]byte
	s := strconv.AppendUint(tmp[:0], v, radix)
	copy(buf, s)
	return len(s)
}

func ftoa(buf []byte, v float64, prec int, verb byte, bitSize int) int {
	var tmp [32]byte // size hint only; AppendFloat grows past it for wide 'f' forms
	s := strconv.AppendFloat(tmp[:0], v, verb, prec, bitSize)
	copy(buf, s)
	return len(s)
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// scanDigits returns the length of the leading run of digits valid in the
// given radix.
func scanDigits(buf []byte, radix int) int {
	n := 0
	for n < len(buf) {
		d := digitVal(buf[n])
		if d < 0 || d >= radix {
			break
		}
		n++
	}
	return n
}

// atoi scans a signed integer prefix: optional sign, then digits in the given
// radix. No radix prefixes (0x and friends) are recognized; the writers never
// emit them. Overflowing the target width is a parse failure.
func atoi(buf []byte, radix, bitSize int) (int64, int) {
	i := 0
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}
	n := scanDigits(buf[i:], radix)
	if n == 0 {
		return 0, NotFound
	}
	i += n
	v, err := strconv.ParseInt(string(buf[:i]), radix, bitSize)
	if err != nil {
		return 0, NotFound
	}
	return v, i
}

// atou is like atoi but unsigned: digits only, no sign.
func atou(buf []byte, radix, bitSize int) (uint64, int) {
	n := scanDigits(buf, radix)
	if n == 0 {
		return 0, NotFound
	}
	v, err := strconv.ParseUint(string(buf[:n]), radix, bitSize)
	if err != nil {
		return 0, NotFound
	}
	return v, n
}

// foldPrefix reports whether buf starts with the given lower case ascii word,
// ignoring case.
func foldPrefix(buf []byte, word string) bool {
	if len(buf) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if buf[i]|0x20 != word[i] {
			return false
		}
	}
	return true
}

// atof scans a floating point prefix: optional sign, then either a special
// word (inf, infinity, nan) or digits with an optional fraction and exponent.
// The exponent marker is consumed only when digits follow it.
func atof(buf []byte, bitSize int) (float64, int) {
	i := 0
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}
	switch {
	case foldPrefix(buf[i:], "infinity"):
		i += len("infinity")
	case foldPrefix(buf[i:], "inf"):
		i += len("inf")
	case foldPrefix(buf[i:], "nan"):
		i += len("nan")
	default:
		whole := scanDigits(buf[i:], 10)
		i += whole
		frac := 0
		if i < len(buf) && buf[i] == '.' {
			frac = scanDigits(buf[i+1:], 10)
			if whole+frac == 0 {
				return 0, NotFound
			}
			i += 1 + frac
		}
		if whole+frac == 0 {
			return 0, NotFound
		}
		if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
			j := i + 1
			if j < len(buf) && (buf[j] == '+' || buf[j] == '-') {
				j++
			}
			if d := scanDigits(buf[j:], 10); d > 0 {
				i = j + d
			}
		}
	}
	v, err := strconv.ParseFloat(string(buf[:i]), bitSize)
	if err != nil {
		return 0, NotFound
	}
	return v, i
}

// readBool accepts the words true and false; in lenient mode it also accepts
// any case variation of the words and a plain digit run, where all zeros means
// false and anything else means true.
func readBool(buf []byte, v *bool, strict bool) int {
	if strict {
		switch {
		case len(buf) >= 4 && string(buf[:4]) == "true":
			*v = true
			return 4
		case len(buf) >= 5 && string(buf[:5]) == "false":
			*v = false
			return 5
		}
		return NotFound
	}
	switch {
	case foldPrefix(buf, "true"):
		*v = true
		return 4
	case foldPrefix(buf, "false"):
		*v = false
		return 5
	}
	n := scanDigits(buf, 10)
	if n == 0 {
		return NotFound
	}
	*v = false
	for _, c := range buf[:n] {
		if c != '0' {
			*v = true
			break
		}
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// tokenLen returns the length of the leading run of non-whitespace bytes.
// This is what reading into a plain string or byte slice consumes.
func tokenLen(buf []byte) int {
	n := 0
	for n < len(buf) && !isSpace(buf[n]) {
		n++
	}
	return n
}
