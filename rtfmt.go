package rtfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnmatchedBrace  = errors.New("unmatched brace")
	ErrBadReference    = errors.New("invalid argument reference")
	ErrBadSpecifier    = errors.New("invalid format specifier")
	ErrMissingArgument = errors.New("missing argument")
	ErrUnsupportedKind = errors.New("unsupported output kind")
	ErrTooLarge        = errors.New("width or precision too large")
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrUnknownMessage  = errors.New("unknown message")
)

// Value is a value that can render itself under a [Specifier]. Render must
// honor every field of spec it supports and return an error (typically
// wrapping [ErrUnsupportedKind]) for output kinds it cannot produce.
type Value interface {
	Render(w io.Writer, spec Specifier) error
}

// Map provides named arguments by key.
type Map[V any] interface {
	Get(key string) (V, bool)
}

// SegmentKind tags a [Segment].
type SegmentKind int

const (
	TextSegment SegmentKind = iota
	ArgumentSegment
)

// Segment is either literal text or a resolved argument.
type Segment[V Value] struct {
	Kind SegmentKind
	Text string      // TextSegment: a substring of the format string
	Arg  Argument[V] // ArgumentSegment
}

// Argument is a resolved argument: the value and everything needed to
// render it.
type Argument[V Value] struct {
	Ref    ArgumentRef
	Spec   Specifier
	Offset int // of the opening brace
	Value  V
}

// Render renders the argument's value under its specifier.
func (a Argument[V]) Render(w io.Writer) error {
	return a.Value.Render(w, a.Spec)
}

// Arguments is a parsed and resolved format string.
type Arguments[V Value] struct {
	Segments []Segment[V]
}

// Parse parses format and resolves every argument against positional and
// named. named may be nil when no named arguments are in use. A failure is
// always an [*Error].
func Parse[V Value](format string, positional []V, named Map[V]) (*Arguments[V], error) {
	var segs []Segment[V]
	for seg, err := range Segments(format, positional, named) {
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return &Arguments[V]{Segments: segs}, nil
}

// Validate checks the syntax of format without resolving any argument.
func Validate(format string) error {
	lex := newScanner(format)
	for {
		tok := lex.next()
		switch tok.kind {
		case tokEOF:
			return nil
		case tokErr:
			return tok.err
		}
	}
}

// WriteTo renders every segment to w in order.
func (a *Arguments[V]) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	for _, seg := range a.Segments {
		var err error
		if seg.Kind == TextSegment {
			_, err = io.WriteString(cw, seg.Text)
		} else {
			err = seg.Arg.Render(cw)
		}
		if err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// Format renders a into a string, returning the first render error.
func (a *Arguments[V]) Format() (string, error) {
	var b strings.Builder
	if _, err := a.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String renders a. An argument whose value fails to render is written as
// "%!spec(error)".
func (a *Arguments[V]) String() string {
	var b, arg strings.Builder
	for _, seg := range a.Segments {
		if seg.Kind == TextSegment {
			b.WriteString(seg.Text)
			continue
		}
		arg.Reset()
		if err := seg.Arg.Render(&arg); err != nil {
			fmt.Fprintf(&b, "%%!%s(%v)", seg.Arg.Spec, err)
			continue
		}
		b.WriteString(arg.String())
	}
	return b.String()
}

// Format parses format and renders it.
func Format[V Value](format string, positional []V, named Map[V]) (string, error) {
	args, err := Parse(format, positional, named)
	if err != nil {
		return "", err
	}
	return args.Format()
}

// Fprint parses format and renders it to w. Nothing is written if parsing
// fails.
func Fprint[V Value](w io.Writer, format string, positional []V, named Map[V]) error {
	args, err := Parse(format, positional, named)
	if err != nil {
		return err
	}
	_, err = args.WriteTo(w)
	return err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
