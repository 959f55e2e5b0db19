package rapidtables

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

type template struct {
	separator   string
	bodySep     string
	bodySepFill string
}

var templates = map[Format]template{
	Raw:      {separator: "  "},
	Simple:   {separator: "  ", bodySep: "-", bodySepFill: "  "},
	Markdown: {separator: " | ", bodySep: "-", bodySepFill: "-|-"},
	RST:      {separator: "  ", bodySep: "=", bodySepFill: "  "},
}

// MakeTable renders table with the template f. The header is always
// generated, and the template fixes column and separator strings; header
// labels, alignment and width options pass through. An empty table renders
// as the empty string.
func MakeTable[R Record](table []R, f Format, opts ...Option) (string, error) {
	tmpl, ok := templates[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if len(table) == 0 {
		return "", nil
	}

	opts = append(slices.Clone(opts),
		WithOutput(OutputLines),
		withHeader(),
		WithSeparator(tmpl.separator),
		WithBodySeparator(tmpl.bodySep),
		WithBodySeparatorFill(tmpl.bodySepFill),
	)
	b := FormatTable(table, opts...)
	body := slices.Collect(b.Lines)

	var sb strings.Builder
	switch f {
	case Raw:
		sb.WriteString(b.Header)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("-", textWidth(b.Header)))
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(body, "\n"))
	case Markdown:
		sb.WriteString("| " + b.Header + " |\n")
		sb.WriteString("|-" + b.Separator + "-|\n")
		sb.WriteString("| " + strings.Join(body, " |\n| ") + " |")
	case RST:
		sb.WriteString(b.Separator + "\n")
		sb.WriteString(b.Header + "\n")
		sb.WriteString(b.Separator + "\n")
		sb.WriteString(strings.Join(body, "\n") + "\n")
		sb.WriteString(b.Separator)
	default:
		sb.WriteString(b.Header + "\n")
		sb.WriteString(b.Separator + "\n")
		sb.WriteString(strings.Join(body, "\n"))
	}
	return sb.String(), nil
}

// WriteTable renders table with [MakeTable] and writes it to w followed by a
// newline. Nothing is written for an empty table.
func WriteTable[R Record](w io.Writer, f Format, table []R, opts ...Option) error {
	s, err := MakeTable(table, f, opts...)
	if err != nil || s == "" {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// PrintTable writes table to standard output. See [WriteTable].
func PrintTable[R Record](f Format, table []R, opts ...Option) error {
	return WriteTable(os.Stdout, f, table, opts...)
}

func withHeader() Option {
	return func(c *config) { c.generateHeader = true }
}
