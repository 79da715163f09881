// Package prettytable renders a grid of values as an aligned monospace text
// block for terminals and logs.
//
// A [Table] is built once with [New] and functional options, then [Table.Write]
// renders each grid it is given to the configured sink:
//
//	t := prettytable.New(prettytable.WithBorder(true))
//	err := t.Write([][]any{
//		{"name", "age"},
//		{"Alice", 30},
//	})
//
// # Cells
//
// Cells may hold strings, any integer or float type, booleans,
// [fmt.Stringer] values, or nil. Nil renders as an empty cell; numbers use
// their shortest decimal form. Leading and trailing whitespace is trimmed.
// Any other type (slices, maps, structs) fails with [ErrTypeMismatch] before
// anything is written.
//
// # Rows
//
// By default the longest row sets the column count and shorter rows are
// padded with empty cells. [WithStrict] makes ragged input fail with
// [ErrRowLengthMismatch] instead.
//
// # Layout
//
// Column widths are the longest cell in each column, counted in runes.
// Cells are left-justified. Without a border, columns are separated by
// [WithSpacing] spaces and every line is inset by [WithPadding] spaces:
//
//	hello world test
//	h           t
//
// [WithBorder] draws a heavy box-drawing frame with separators between every
// row and column:
//
//	┏━━━━━━━━━━━━━┳━━━━━━┓
//	┃ hello world ┃ test ┃
//	┣━━━━━━━━━━━━━╋━━━━━━┫
//	┃ h           ┃ t    ┃
//	┗━━━━━━━━━━━━━┻━━━━━━┛
//
// [WithInnerBorder](false) keeps only the outer frame; columns inside it are
// separated by spacing.
//
// Lines are separated by a single line feed. The output never ends with one.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrRowLengthMismatch]: ragged rows in strict mode
//   - [ErrTypeMismatch]: a cell that cannot be shown as text
//   - [ErrInvalidConfig]: negative spacing or padding in a [Config]
//
// Errors returned by the sink are passed through unchanged.
package prettytable
