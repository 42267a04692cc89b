package rtfmt

import "iter"

// Segments scans format lazily, resolving each argument as it is reached.
// The sequence yields at most one error, after which it stops. Every call of
// the returned function starts a fresh scan.
func Segments[V Value](format string, positional []V, named Map[V]) iter.Seq2[Segment[V], error] {
	return func(yield func(Segment[V], error) bool) {
		lex := newScanner(format)
		res := resolver[V]{positional: positional, named: named}
		for {
			tok := lex.next()
			switch tok.kind {
			case tokEOF:
				return
			case tokErr:
				yield(Segment[V]{}, tok.err)
				return
			case tokText:
				if !yield(Segment[V]{Kind: TextSegment, Text: tok.text}, nil) {
					return
				}
			case tokArg:
				arg, err := res.resolve(tok)
				if err != nil {
					yield(Segment[V]{}, err)
					return
				}
				if !yield(Segment[V]{Kind: ArgumentSegment, Arg: arg}, nil) {
					return
				}
			}
		}
	}
}

// resolver binds argument references to values. next is the implicit
// position counter for one scan.
type resolver[V Value] struct {
	positional []V
	named      Map[V]
	next       int
}

func (r *resolver[V]) resolve(tok token) (Argument[V], error) {
	arg := Argument[V]{Ref: tok.ref, Spec: tok.spec, Offset: tok.off}
	var ok bool
	switch tok.ref.Kind {
	case RefNext:
		arg.Value, ok = r.index(r.next)
		r.next++
	case RefIndex:
		arg.Value, ok = r.index(tok.ref.Index)
	case RefName:
		if r.named != nil {
			arg.Value, ok = r.named.Get(tok.ref.Name)
		}
	}
	if !ok {
		return Argument[V]{}, &Error{Offset: tok.off, Err: ErrMissingArgument}
	}
	return arg, nil
}

func (r *resolver[V]) index(i int) (V, bool) {
	if i < 0 || i >= len(r.positional) {
		var zero V
		return zero, false
	}
	return r.positional[i], true
}
