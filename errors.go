package rtfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Error is a parse failure located by byte offset into the format string.
// Err is one of [ErrUnmatchedBrace], [ErrBadReference], [ErrBadSpecifier]
// or [ErrMissingArgument].
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }

// Caret returns format followed by a line with a '^' under the offending
// character, for display in a terminal.
func (e *Error) Caret(format string) string {
	off := min(max(e.Offset, 0), len(format))
	line := format
	if i := strings.LastIndexByte(format[:off], '\n'); i >= 0 {
		line = format[i+1:]
		off -= i + 1
	}
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return line + "\n" + strings.Repeat(" ", runewidth.StringWidth(line[:off])) + "^"
}
