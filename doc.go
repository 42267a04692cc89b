// Package rtfmt parses and renders format strings at run time.
//
// The syntax is the brace syntax of compile-time format strings, interpreted
// dynamically so the format string can come from user input, configuration
// or translation tables:
//
//	format   := (text | "{{" | "}}" | argument)*
//	argument := "{" [ref] [":" spec] "}"
//	ref      := "" | digits | identifier
//	spec     := [align] ["+"] ["#"] ["0"] [width] ["." precision] [kind]
//	align    := "<" | "^" | ">"
//	kind     := "" | "?" | "o" | "x" | "X" | "b" | "e" | "E"
//
// The central entry point is [Parse], which scans the format string,
// resolves every argument against positional and named values, and returns
// [Arguments] ready to render:
//
//	args, err := rtfmt.Parse("{name} has {0:>5.1} points", rtfmt.Dynamics(12.25), rtfmt.DynamicMap(map[string]any{"name": "Ada"}))
//	if err != nil { ... }
//	fmt.Println(args) // Ada has  12.2 points
//
// # Arguments
//
// "{}" takes the next implicit position; each "{}" consumes a new one, left
// to right. "{1}" takes position 1 and does not touch the implicit counter.
// "{name}" looks name up in the [Map] of named arguments. [MapOf] wraps a Go
// map and [NoMap] is always empty; a nil Map behaves like NoMap.
//
// # Values
//
// The package does not render values itself. Each value implements [Value]
// and receives the parsed [Specifier]. [Dynamic] adapts ordinary Go values:
//
//	rtfmt.Format("{:#06x}", rtfmt.Dynamics(255), nil) // "0x00ff"
//
// # Errors
//
// Every parse failure is an [*Error] holding the byte offset of the
// offending character and wrapping one of:
//
//   - [ErrUnmatchedBrace] - a '{' without '}', or a lone '}'
//   - [ErrBadReference] - an argument reference that is neither digits nor an identifier
//   - [ErrBadSpecifier] - text after ':' that does not follow the grammar
//   - [ErrMissingArgument] - a position out of range or an absent name
//
// Failures inside an argument are reported at its opening brace. Parsing
// stops at the first failure. [Error.Caret] draws a pointer under the
// offset.
//
// # Catalogs
//
// A [Catalog] holds named format strings loaded from YAML and validated up
// front. [FormatMessage] renders one of them.
package rtfmt
