package tpack_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hasen.dev/tpack"
)

func TestBoolalpha(t *testing.T) {
	t.Parallel()

	b := true
	assert.Equal(t, "true", tpack.CatString(tpack.Boolalpha(&b, false)))
	b = false
	assert.Equal(t, "false", tpack.CatString(tpack.Boolalpha(&b, false)))

	t.Run("strict rejects digit forms", func(t *testing.T) {
		t.Parallel()
		var v bool
		assert.Equal(t, tpack.NotFound, tpack.Uncat([]byte("1"), tpack.Boolalpha(&v, true)))
		assert.Equal(t, tpack.NotFound, tpack.Uncat([]byte("TRUE"), tpack.Boolalpha(&v, true)))

		n := tpack.Uncat([]byte("false"), tpack.Boolalpha(&v, true))
		require.Equal(t, 5, n)
		assert.False(t, v)
	})

	t.Run("lenient accepts digits and case variants", func(t *testing.T) {
		t.Parallel()
		var v bool
		n := tpack.Uncat([]byte("1"), tpack.Boolalpha(&v, false))
		require.Equal(t, 1, n)
		assert.True(t, v)

		n = tpack.Uncat([]byte("00"), tpack.Boolalpha(&v, false))
		require.Equal(t, 2, n)
		assert.False(t, v)

		n = tpack.Uncat([]byte("True"), tpack.Boolalpha(&v, false))
		require.Equal(t, 4, n)
		assert.True(t, v)
	})
}

func TestIntegralRadix(t *testing.T) {
	t.Parallel()

	v := 255
	assert.Equal(t, "ff", tpack.CatString(tpack.Hex(&v)))
	assert.Equal(t, "377", tpack.CatString(tpack.Oct(&v)))
	assert.Equal(t, "11111111", tpack.CatString(tpack.Bin(&v)))
	assert.Equal(t, "73", tpack.CatString(tpack.Integral(&v, 36)))

	neg := int16(-42)
	assert.Equal(t, "-2a", tpack.CatString(tpack.Hex(&neg)))

	u := uint8(200)
	assert.Equal(t, "c8", tpack.CatString(tpack.Hex(&u)))

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var w uint
		n := tpack.Uncat([]byte("deadbeef"), tpack.Hex(&w))
		require.Equal(t, 8, n)
		assert.Equal(t, uint(0xdeadbeef), w)
	})

	t.Run("overflow is a parse failure", func(t *testing.T) {
		t.Parallel()
		var w uint8
		assert.Equal(t, tpack.NotFound, tpack.Uncat([]byte("300"), tpack.Integral(&w, 10)))
	})

	t.Run("radix out of range panics", func(t *testing.T) {
		t.Parallel()
		v := 1
		assert.Panics(t, func() { tpack.Integral(&v, 1) })
		assert.Panics(t, func() { tpack.Integral(&v, 37) })
	})
}

func TestPtr(t *testing.T) {
	t.Parallel()

	x := 5
	s := tpack.CatString(tpack.Ptr(&x))
	assert.NotEmpty(t, s)
	assert.NotEqual(t, "0", s)
	for _, c := range s {
		assert.Contains(t, "0123456789abcdef", string(c))
	}

	assert.Equal(t, "0", tpack.CatString(tpack.Ptr(nil)))

	var nilPtr *int
	assert.Equal(t, "0", tpack.CatString(tpack.Ptr(nilPtr)))

	assert.Panics(t, func() { tpack.Ptr(42) })
}

func TestReal(t *testing.T) {
	t.Parallel()

	f := 3.14159
	assert.Equal(t, "3.14", tpack.CatString(tpack.Real(&f, 2, tpack.Fixed)))

	e := 1250.0
	assert.Equal(t, "1.250e+03", tpack.CatString(tpack.Real(&e, 3, tpack.Scientific)))

	s := 0.5
	assert.Equal(t, "0.5", tpack.CatString(tpack.Real(&s, -1, tpack.Shortest)))

	f32 := float32(2.25)
	assert.Equal(t, "2.25", tpack.CatString(tpack.Real(&f32, -1, tpack.Shortest)))

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var v float64
		n := tpack.Uncat([]byte("-1.25e2"), tpack.Real(&v, -1, tpack.Shortest))
		require.Equal(t, 7, n)
		assert.Equal(t, -125.0, v)
	})
}

func TestNotationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Shortest", tpack.Shortest.String())
	assert.Equal(t, "Fixed", tpack.Fixed.String())
	assert.Equal(t, "Scientific", tpack.Scientific.String())
	assert.True(t, strings.HasPrefix(tpack.Notation(9).String(), "Notation("))
}

func TestRaw(t *testing.T) {
	t.Parallel()

	t.Run("alignment must be a power of two", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { tpack.Raw([]byte{1}, 3) })
		assert.Panics(t, func() { tpack.Raw([]byte{1}, 0) })
		assert.NotPanics(t, func() { tpack.Raw([]byte{1}, 8) })
	})

	t.Run("round trip through the same buffer", func(t *testing.T) {
		t.Parallel()
		payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
		buf := make([]byte, 64)

		n := tpack.Cat(buf, tpack.Raw(payload, 4))
		require.LessOrEqual(t, n, 4+len(payload))
		require.GreaterOrEqual(t, n, len(payload))

		got := make([]byte, len(payload))
		m := tpack.Uncat(buf[:n], tpack.Raw(got, 4))
		require.Equal(t, n, m)
		assert.Equal(t, payload, got)
	})

	t.Run("alignment one never pads", func(t *testing.T) {
		t.Parallel()
		payload := []byte("abc")
		buf := make([]byte, 16)
		n := tpack.Cat(buf, tpack.Raw(payload, 1))
		assert.Equal(t, len(payload), n)
		assert.Equal(t, "abc", string(buf[:n]))
	})
}

// Coordinate is a type the test pretends not to own, so its conversions go
// through the registry instead of the CharWriter/CharReader interfaces.
type Coordinate struct {
	X, Y int
}

func init() {
	tpack.RegisterFormat(
		func(buf []byte, v Coordinate) int {
			return tpack.CatSep(buf, ",", v.X, v.Y)
		},
		func(buf []byte, v *Coordinate) int {
			return tpack.UncatSep(buf, ",", &v.X, &v.Y)
		},
	)
}

func TestRegisterFormat(t *testing.T) {
	t.Parallel()

	out := tpack.FormatString("at {}", Coordinate{X: 3, Y: -7})
	assert.Equal(t, "at 3,-7", out)

	var c Coordinate
	n := tpack.Unformat([]byte(out), "at {}", &c)
	require.Equal(t, len(out), n)
	assert.Equal(t, Coordinate{X: 3, Y: -7}, c)

	spew.Dump(c)
}

func TestUnsupportedTypePanics(t *testing.T) {
	t.Parallel()

	type unregistered struct{ n int }
	assert.Panics(t, func() { tpack.Cat(nil, unregistered{n: 1}) })
	var u unregistered
	assert.Panics(t, func() { tpack.Uncat([]byte("x"), &u) })
}
