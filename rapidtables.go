package rapidtables

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("table format not supported")
)

// Format names a table template understood by [MakeTable].
type Format string

const (
	Raw      Format = "raw"
	Simple   Format = "simple"
	Markdown Format = "md"
	RST      Format = "rst"
)

var formats = []Format{Raw, Simple, Markdown, RST}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported template names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a template name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Output selects the shape of a [Bundle] body.
type Output int

const (
	// OutputRaw joins every body line with newlines into Bundle.Raw.
	OutputRaw Output = iota
	// OutputLines yields formatted lines lazily through Bundle.Lines.
	OutputLines
	// OutputTuples yields justified cells lazily through Bundle.Tuples.
	OutputTuples
)

func (o Output) String() string {
	switch o {
	case OutputRaw:
		return "raw"
	case OutputLines:
		return "lines"
	case OutputTuples:
		return "tuples"
	default:
		return fmt.Sprintf("Output(%d)", int(o))
	}
}

// Alignment controls how a cell is padded to its column width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

func (a Alignment) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Record is one table row. Keys reports column keys in column order; the
// first record of a table defines the columns. Value reports the value stored
// under key, with ok false when the key is missing. A missing key and a nil
// value both render as a blank cell.
type Record interface {
	Keys() []string
	Value(key string) (v any, ok bool)
}

// Layout is the resolved width and alignment of one column.
type Layout struct {
	Key   string
	Width int
	Align Alignment
}
