package rtfmt

import "strings"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokText
	tokArg
	tokErr
)

type token struct {
	kind tokenKind
	text string // tokText
	ref  ArgumentRef
	spec Specifier
	off  int // byte offset of the token in the format string
	err  error
}

// scanner splits a format string into text and argument tokens. It does not
// look at argument values; see resolver for that.
type scanner struct {
	src string
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{src: s}
}

// next returns the next token. After tokErr or tokEOF it keeps returning
// tokEOF.
func (l *scanner) next() token {
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, off: len(l.src)}
	}
	start := l.pos
	rest := l.src[start:]
	i := strings.IndexAny(rest, "{}")
	switch {
	case i < 0:
		l.pos = len(l.src)
		return token{kind: tokText, text: rest, off: start}

	case i+1 < len(rest) && rest[i+1] == rest[i]:
		// "{{" or "}}": the text run ends with one brace and the other is
		// dropped.
		l.pos += i + 2
		return token{kind: tokText, text: rest[:i+1], off: start}

	case i > 0:
		l.pos += i
		return token{kind: tokText, text: rest[:i], off: start}

	case rest[0] == '}':
		return l.fail(ErrUnmatchedBrace, start)

	default:
		return l.argument()
	}
}

// argument scans "{ref:spec}" starting at the open brace. Every failure
// inside it is reported at the open brace.
func (l *scanner) argument() token {
	start := l.pos
	end := strings.IndexByte(l.src[start+1:], '}')
	if end < 0 {
		return l.fail(ErrUnmatchedBrace, start)
	}
	body := l.src[start+1 : start+1+end]
	l.pos = start + 1 + end + 1

	refText, specText, hasSpec := strings.Cut(body, ":")
	ref, ok := parseRef(refText)
	if !ok {
		return l.fail(ErrBadReference, start)
	}
	var spec Specifier
	if hasSpec {
		if spec, ok = parseSpecifier(specText); !ok {
			return l.fail(ErrBadSpecifier, start)
		}
	}
	return token{kind: tokArg, ref: ref, spec: spec, off: start}
}

func (l *scanner) fail(kind error, off int) token {
	l.pos = len(l.src)
	return token{kind: tokErr, off: off, err: &Error{Offset: off, Err: kind}}
}
