package rtfmt

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// RefKind tags an [ArgumentRef].
type RefKind int

const (
	RefNext  RefKind = iota // "{}": the next implicit position
	RefIndex                // "{1}": an explicit position
	RefName                 // "{name}": a named argument
)

// ArgumentRef names the value an argument renders.
type ArgumentRef struct {
	Kind  RefKind
	Index int    // RefIndex only
	Name  string // RefName only
}

// Next refers to the next implicit positional argument.
func Next() ArgumentRef { return ArgumentRef{Kind: RefNext} }

// Index refers to the positional argument at i.
func Index(i int) ArgumentRef { return ArgumentRef{Kind: RefIndex, Index: i} }

// Named refers to the named argument with the given key.
func Named(name string) ArgumentRef { return ArgumentRef{Kind: RefName, Name: name} }

func (r ArgumentRef) String() string {
	switch r.Kind {
	case RefIndex:
		return strconv.Itoa(r.Index)
	case RefName:
		return r.Name
	default:
		return ""
	}
}

// parseRef parses the whole of s as a reference: empty, a run of digits,
// or an identifier.
func parseRef(s string) (ArgumentRef, bool) {
	if s == "" {
		return Next(), true
	}
	if digitsEnd(s, 0) == len(s) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return ArgumentRef{}, false
		}
		return Index(i), true
	}
	if isIdentifier(s) {
		return Named(s), true
	}
	return ArgumentRef{}, false
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}
