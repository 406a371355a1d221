/*
Package tpack implements buffer-exact text serialization and parsing of
heterogeneous values into and from fixed-size byte buffers.

The purpose of this package is to serve as the formatting building block for
code that owns its buffers: wire protocols, log encoders, key builders, and
similar places where you want full control over allocation. It is general
purpose enough to be used anywhere text needs to be assembled or picked apart.

# Exact sizing

Every serializing operation takes a destination buffer of whatever size the
caller has, never writes past its end, and returns the number of characters
the complete result needs. Comparing the returned size against the buffer's
length tells you whether the write actually completed:

	n := tpack.Cat(buf, "x=", 42)
	if n > len(buf) {
	    // buf was too small; n is how much room the full result needs
	}

This holds for any buffer length, including zero, so the same call doubles as
a measuring pass. The Append and To drivers build on exactly that: measure,
resize the backing store, and run the conversion once more.

# Conversion functions

A value is converted through a single customization point: the CharWriter and
CharReader interfaces. Built-in types (strings, byte slices, booleans, all
integer widths, floats) are handled directly; any other type either implements
the interfaces or gets registered with RegisterFormat.

Parsing mirrors serialization. Each parsing operation takes pointers to the
output values, consumes the input left to right, and returns the number of
characters consumed, or NotFound as soon as any value fails to parse.

# Composition

Three engines compose single-value conversions:

	tpack.Cat(buf, a, b, c)              // back to back
	tpack.CatSep(buf, ", ", a, b, c)     // separator between arguments
	tpack.Format(buf, "{} = {}", k, v)   // template with {} placeholders

each with an inverse (Uncat, UncatSep, Unformat) and with growing variants
that drive a resizable store instead of a fixed buffer (CatTo, CatAppend,
AppendCat, CatString, and friends).

# Formatting policy

Wrappers attach formatting policy to a value before it reaches the conversion
point. They hold a pointer to the value, so the same wrapper works in both
directions:

	v := 3735928559
	tpack.Cat(buf, tpack.Hex(&v))        // deadbeef
	tpack.Uncat(out, tpack.Hex(&v))      // parses hex back into v

See Integral, Real, Boolalpha, Raw, and the Hex/Oct/Bin/Ptr shorthands.
*/
package tpack
