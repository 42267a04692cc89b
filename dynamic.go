package rtfmt

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Dynamic adapts any Go value to [Value].
//
// Integers support every output kind; radix kinds use sign and magnitude,
// so -42 in hex is "-2a". Floats support Display, Debug and the exponent
// kinds. Strings, bools, errors and fmt.Stringers support Display and Debug.
// Other values render with fmt for Display and with spew for Debug, where
// '#' selects a multi-line dump.
//
// Numbers align right by default and honor '+' and '0'; everything else
// aligns left and ignores them. Widths and precisions above [MaxWidth] fail
// with [ErrTooLarge].
type Dynamic struct {
	V any
}

// Of wraps v.
func Of(v any) Dynamic { return Dynamic{V: v} }

// Dynamics wraps each of vs, for use as positional arguments.
func Dynamics(vs ...any) []Dynamic {
	out := make([]Dynamic, len(vs))
	for i, v := range vs {
		out[i] = Of(v)
	}
	return out
}

// DynamicMap wraps each value of m, for use as named arguments.
func DynamicMap(m map[string]any) MapOf[Dynamic] {
	out := make(MapOf[Dynamic], len(m))
	for k, v := range m {
		out[k] = Of(v)
	}
	return out
}

// MaxWidth bounds the width and precision Dynamic will render, as fmt does.
const MaxWidth = 1e6

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Render implements [Value].
func (d Dynamic) Render(w io.Writer, spec Specifier) error {
	b, err := d.body(spec)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, b.pad(spec))
	return err
}

func (d Dynamic) body(spec Specifier) (body, error) {
	if w, ok := spec.Width.Value(); ok && w > MaxWidth {
		return body{}, fmt.Errorf("%w: width %d", ErrTooLarge, w)
	}
	if p, ok := spec.Precision.Value(); ok && p > MaxWidth {
		return body{}, fmt.Errorf("%w: precision %d", ErrTooLarge, p)
	}
	if d.V == nil {
		return textBody("<nil>", spec, d.V)
	}
	if spec.Kind == Display {
		switch v := d.V.(type) {
		case error:
			return textBody(v.Error(), spec, d.V)
		case fmt.Stringer:
			return textBody(v.String(), spec, d.V)
		}
	}

	rv := reflect.ValueOf(d.V)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		mag := uint64(i)
		if i < 0 {
			mag = -mag
		}
		return intBody(i < 0, mag, spec), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return intBody(false, rv.Uint(), spec), nil
	case reflect.Float32:
		return floatBody(rv.Float(), 32, spec, d.V)
	case reflect.Float64:
		return floatBody(rv.Float(), 64, spec, d.V)
	case reflect.String:
		if spec.Kind == Debug {
			return body{digits: strconv.Quote(rv.String())}, nil
		}
		return textBody(rv.String(), spec, d.V)
	case reflect.Bool:
		return textBody(strconv.FormatBool(rv.Bool()), spec, d.V)
	}

	switch spec.Kind {
	case Display:
		return textBody(fmt.Sprint(d.V), spec, d.V)
	case Debug:
		if spec.Repr == ReprAlt {
			return body{digits: strings.TrimSuffix(spewConfig.Sdump(d.V), "\n")}, nil
		}
		return body{digits: spewConfig.Sprintf("%+v", d.V)}, nil
	}
	return body{}, unsupported(spec.Kind, d.V)
}

// textBody renders s for Display (truncated to the precision) or Debug.
func textBody(s string, spec Specifier, v any) (body, error) {
	switch spec.Kind {
	case Display, Debug:
	default:
		return body{}, unsupported(spec.Kind, v)
	}
	if p, ok := spec.Precision.Value(); ok {
		s = truncate(s, p)
	}
	return body{digits: s}, nil
}

func intBody(neg bool, mag uint64, spec Specifier) body {
	b := body{numeric: true, sign: signOf(neg, spec)}
	alt := spec.Repr == ReprAlt
	switch spec.Kind {
	case Octal:
		b.digits = strconv.FormatUint(mag, 8)
		if alt {
			b.prefix = "0o"
		}
	case LowerHex, UpperHex:
		b.digits = strconv.FormatUint(mag, 16)
		if spec.Kind == UpperHex {
			b.digits = strings.ToUpper(b.digits)
		}
		if alt {
			b.prefix = "0x"
		}
	case Binary:
		b.digits = strconv.FormatUint(mag, 2)
		if alt {
			b.prefix = "0b"
		}
	case LowerExp, UpperExp:
		// Exact: no rounding through float64.
		s := strconv.FormatUint(mag, 10)
		exp := len(s) - 1
		var m string
		if p, ok := spec.Precision.Value(); ok {
			var carry bool
			m, carry = roundDigits(s, p+1)
			if carry {
				exp++
			}
			if p > 0 {
				m = m[:1] + "." + m[1:]
			}
		} else {
			m = s[:1]
			if frac := strings.TrimRight(s[1:], "0"); frac != "" {
				m += "." + frac
			}
		}
		b.digits = m + expLetter(spec.Kind) + strconv.Itoa(exp)
	default:
		b.digits = strconv.FormatUint(mag, 10)
	}
	return b
}

func floatBody(f float64, bits int, spec Specifier, v any) (body, error) {
	switch spec.Kind {
	case Octal, LowerHex, UpperHex, Binary:
		return body{}, unsupported(spec.Kind, v)
	}
	if math.IsNaN(f) {
		return body{numeric: true, special: true, digits: "NaN"}, nil
	}
	b := body{numeric: true, sign: signOf(math.Signbit(f), spec)}
	f = math.Abs(f)
	if math.IsInf(f, 0) {
		b.special = true
		b.digits = "inf"
		return b, nil
	}
	prec := -1
	if p, ok := spec.Precision.Value(); ok {
		prec = p
	}
	switch spec.Kind {
	case LowerExp, UpperExp:
		b.digits = expString(f, prec, bits, spec.Kind == UpperExp)
	default:
		b.digits = strconv.FormatFloat(f, 'f', prec, bits)
		if spec.Kind == Debug && prec < 0 && !strings.Contains(b.digits, ".") {
			b.digits += ".0"
		}
	}
	return b, nil
}

// roundDigits rounds the decimal digit string s to n significant digits,
// half to even like strconv, padding with zeros when s is shorter. carry
// reports that rounding added a digit ("999" to 2 digits is "10", carry).
func roundDigits(s string, n int) (string, bool) {
	if len(s) <= n {
		return s + strings.Repeat("0", n-len(s)), false
	}
	keep := []byte(s[:n])
	next, rest := s[n], s[n+1:]
	up := next > '5' ||
		next == '5' && (strings.TrimRight(rest, "0") != "" || (keep[n-1]-'0')%2 == 1)
	if !up {
		return string(keep), false
	}
	for i := n - 1; i >= 0; i-- {
		if keep[i] != '9' {
			keep[i]++
			return string(keep), false
		}
		keep[i] = '0'
	}
	return "1" + string(keep[:n-1]), true
}

// expString formats f as "1.5e3": no '+' and no zero padding in the
// exponent.
func expString(f float64, prec, bits int, upper bool) string {
	s := strconv.FormatFloat(f, 'e', prec, bits)
	mant, exp, _ := strings.Cut(s, "e")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
	if exp == "" {
		exp = "0"
	} else if neg {
		exp = "-" + exp
	}
	if upper {
		return mant + "E" + exp
	}
	return mant + "e" + exp
}

func expLetter(k Kind) string {
	if k == UpperExp {
		return "E"
	}
	return "e"
}

func signOf(neg bool, spec Specifier) string {
	switch {
	case neg:
		return "-"
	case spec.Sign == SignAlways:
		return "+"
	default:
		return ""
	}
}

func unsupported(k Kind, v any) error {
	return fmt.Errorf("%w: %q for %T", ErrUnsupportedKind, k.String(), v)
}
