package rtfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// body is a rendered value before padding. Numbers keep their sign and
// radix prefix apart from the digits so zero padding can go between them.
type body struct {
	sign    string
	prefix  string
	digits  string
	numeric bool
	special bool // NaN or inf: never zero padded
}

// pad applies width, alignment and the pad character. Widths are counted in
// terminal cells.
func (b body) pad(spec Specifier) string {
	head := b.sign + b.prefix
	width, ok := spec.Width.Value()
	if !ok {
		return head + b.digits
	}
	if b.numeric && !b.special && spec.Pad == PadZero {
		n := width - runewidth.StringWidth(head+b.digits)
		if n <= 0 {
			return head + b.digits
		}
		return head + strings.Repeat("0", n) + b.digits
	}
	align := spec.Align
	if align == AlignNone {
		align = AlignLeft
		if b.numeric {
			align = AlignRight
		}
	}
	return alignCell(head+b.digits, width, align)
}

func alignCell(s string, width int, align Align) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// truncate cuts s to at most n cells.
func truncate(s string, n int) string {
	if runewidth.StringWidth(s) <= n {
		return s
	}
	return runewidth.Truncate(s, n, "")
}
