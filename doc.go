// Package rapidtables formats uniform records as aligned plain-text tables.
//
// A table is a slice of [Record] values. The first record's keys define the
// columns and their order. [Row] is a ready-made ordered record:
//
//	table := []rapidtables.Row{
//		rapidtables.NewRow(rapidtables.Field{Key: "name", Value: "alpha"}, rapidtables.Field{Key: "size", Value: 12}),
//		rapidtables.NewRow(rapidtables.Field{Key: "name", Value: "beta"}, rapidtables.Field{Key: "size", Value: 1024}),
//	}
//
// # Templates
//
// [MakeTable], [WriteTable] and [PrintTable] render a complete table with one
// of the templates [Raw], [Simple], [Markdown] or [RST]:
//
//	s, err := rapidtables.MakeTable(table, rapidtables.Markdown)
//
// Use [ParseFormat] to turn a flag value into a [Format].
//
// # Formatting
//
// [FormatTable] exposes the formatted pieces as a [Bundle]: a header, an
// optional separator line and the body, shaped by [WithOutput]:
//
//   - [OutputRaw] — the body joined into one string
//   - [OutputLines] — a lazy sequence of formatted lines
//   - [OutputTuples] — a lazy sequence of justified cells per row
//
// The lazy body is single pass. Rows are rendered as they are pulled.
//
// # Column widths
//
// Each column is as wide as its longest value and its header label, measured
// over every row. [WithFirstRowWidths] measures the first row only, and
// [WithColumnWidth] or [WithColumnWidths] fix the widths. Cells are never
// truncated: content wider than its column overflows it.
//
// Widths are character counts; East Asian wide characters and escape
// sequences are not accounted for.
//
// # Alignment
//
// A column whose values all coerce to a float is right-aligned; any other
// column is left-aligned. Blank values do not count either way, so a column
// with no values is right-aligned. [WithNoAlign] left-aligns everything.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown template name
package rapidtables
