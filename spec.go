package rtfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Specifier is the parsed form of the text after ':' in an argument, e.g.
// the ">+#08.3x" in "{0:>+#08.3x}". The zero value is the empty specifier.
type Specifier struct {
	Align     Align
	Sign      Sign
	Repr      Repr
	Pad       Pad
	Width     Width
	Precision Precision
	Kind      Kind
}

// Align controls where padding goes when a rendered value is narrower than
// its width.
type Align int

const (
	AlignNone Align = iota // the value's own default
	AlignLeft
	AlignCenter
	AlignRight
)

// Sign controls whether non-negative numbers carry a sign.
type Sign int

const (
	SignDefault Sign = iota // only negative numbers are signed
	SignAlways
)

// Repr selects the alternate representation ('#').
type Repr int

const (
	ReprDefault Repr = iota
	ReprAlt
)

// Pad is the padding character for numbers.
type Pad int

const (
	PadSpace Pad = iota
	PadZero
)

// Kind is the output kind selected by the trailing letter of a specifier.
type Kind int

const (
	Display Kind = iota
	Debug
	Octal
	LowerHex
	UpperHex
	Binary
	LowerExp
	UpperExp
)

// Width is either Auto (the natural length of the value) or an explicit
// minimum number of cells.
type Width struct {
	Explicit bool
	N        int
}

// AtLeast returns an explicit width of n.
func AtLeast(n int) Width { return Width{Explicit: true, N: n} }

// Value returns the explicit width, if any.
func (w Width) Value() (int, bool) { return w.N, w.Explicit }

func (w Width) String() string {
	if !w.Explicit {
		return ""
	}
	return strconv.Itoa(w.N)
}

// Precision is either Auto or an exact precision. Its meaning is up to the
// value being rendered: digits after the point for floats, maximum length
// for strings.
type Precision struct {
	Explicit bool
	N        int
}

// Exactly returns an explicit precision of n.
func Exactly(n int) Precision { return Precision{Explicit: true, N: n} }

// Value returns the explicit precision, if any.
func (p Precision) Value() (int, bool) { return p.N, p.Explicit }

func (p Precision) String() string {
	if !p.Explicit {
		return ""
	}
	return "." + strconv.Itoa(p.N)
}

// sym binds a single-byte token to a variant. The default variant of every
// axis has the empty token and never appears in a table.
type sym[T comparable] struct {
	tok byte
	val T
}

var (
	alignSyms = []sym[Align]{{'<', AlignLeft}, {'^', AlignCenter}, {'>', AlignRight}}
	signSyms  = []sym[Sign]{{'+', SignAlways}}
	reprSyms  = []sym[Repr]{{'#', ReprAlt}}
	padSyms   = []sym[Pad]{{'0', PadZero}}
	kindSyms  = []sym[Kind]{
		{'?', Debug},
		{'o', Octal},
		{'x', LowerHex},
		{'X', UpperHex},
		{'b', Binary},
		{'e', LowerExp},
		{'E', UpperExp},
	}
)

// take consumes one token of the given axis at s[i], if present.
func take[T comparable](s string, i int, table []sym[T]) (T, int) {
	if i < len(s) {
		for _, e := range table {
			if e.tok == s[i] {
				return e.val, i + 1
			}
		}
	}
	var def T
	return def, i
}

func symString[T comparable](table []sym[T], v T) string {
	for _, e := range table {
		if e.val == v {
			return string(e.tok)
		}
	}
	return ""
}

func (a Align) String() string { return symString(alignSyms, a) }
func (s Sign) String() string  { return symString(signSyms, s) }
func (r Repr) String() string  { return symString(reprSyms, r) }
func (p Pad) String() string   { return symString(padSyms, p) }
func (k Kind) String() string  { return symString(kindSyms, k) }

// String returns the canonical specifier text, without the leading ':'.
// ParseSpecifier(s.String()) == s for every specifier produced by parsing.
func (s Specifier) String() string {
	var b strings.Builder
	for _, part := range []fmt.Stringer{s.Align, s.Sign, s.Repr, s.Pad, s.Width, s.Precision, s.Kind} {
		b.WriteString(part.String())
	}
	return b.String()
}

// ParseSpecifier parses the specifier text that follows ':' inside an
// argument. On failure the returned error wraps [ErrBadSpecifier].
func ParseSpecifier(s string) (Specifier, error) {
	spec, ok := parseSpecifier(s)
	if !ok {
		return Specifier{}, fmt.Errorf("%w: %q", ErrBadSpecifier, s)
	}
	return spec, nil
}

// parseSpecifier reads the fields strictly left to right, each at most once.
// Anything left over is a failure.
func parseSpecifier(s string) (Specifier, bool) {
	var spec Specifier
	i := 0
	spec.Align, i = take(s, i, alignSyms)
	spec.Sign, i = take(s, i, signSyms)
	spec.Repr, i = take(s, i, reprSyms)
	spec.Pad, i = take(s, i, padSyms)

	if j := digitsEnd(s, i); j > i {
		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return Specifier{}, false
		}
		spec.Width = AtLeast(n)
		i = j
	}

	if i < len(s) && s[i] == '.' {
		i++
		j := digitsEnd(s, i)
		if j == i {
			return Specifier{}, false
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return Specifier{}, false
		}
		spec.Precision = Exactly(n)
		i = j
	}

	spec.Kind, i = take(s, i, kindSyms)
	return spec, i == len(s)
}

// digitsEnd returns the index just past the run of ASCII digits at s[i:].
func digitsEnd(s string, i int) int {
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}
