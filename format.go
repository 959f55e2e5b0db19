package rapidtables

import (
	"iter"
	"slices"
	"strings"
)

// Bundle is the result of formatting a table: an optional header, an optional
// separator line and the body. Which fields are set depends on Output:
//
//   - [OutputRaw]: Header, Separator and Raw.
//   - [OutputLines]: Header, Separator and Lines.
//   - [OutputTuples]: HeaderCells, SeparatorCells and Tuples.
//
// Lines and Tuples are single pass. Each range continues where the previous
// one stopped, and an exhausted body yields nothing.
type Bundle struct {
	Output       Output
	HasHeader    bool
	HasSeparator bool

	Header    string
	Separator string

	HeaderCells    []string
	SeparatorCells []string

	Raw    string
	Lines  iter.Seq[string]
	Tuples iter.Seq[[]string]

	layouts []Layout
	body    *body
}

// FormatTable formats table. Columns are the keys of the first record, in
// order; keys that only later records carry are ignored. It returns nil when
// table is empty.
func FormatTable[R Record](table []R, opts ...Option) *Bundle {
	if len(table) == 0 {
		return nil
	}
	cfg := newConfig(opts)
	keys := slices.Clone(table[0].Keys())
	layouts := resolve(keys, table, &cfg)
	return newBundle(&cfg, layouts, renderer(sliceCursor(table), layouts), nil)
}

// Layouts returns the resolved column layouts.
func (b *Bundle) Layouts() []Layout {
	return slices.Clone(b.layouts)
}

// Close releases the row source of a body that has not been consumed to the
// end. It is only needed for bundles built by [FormatIter] or [FormatChan],
// and is safe to call more than once.
func (b *Bundle) Close() {
	if b != nil && b.body != nil {
		b.body.finish()
	}
}

func newBundle(cfg *config, layouts []Layout, next func() ([]string, bool), stop func()) *Bundle {
	b := &Bundle{
		Output:       cfg.output,
		HasHeader:    cfg.generateHeader,
		HasSeparator: cfg.generateHeader && cfg.bodySep != "",
		layouts:      layouts,
		body:         &body{next: next, stop: stop},
	}

	if b.HasHeader {
		cells := headerCells(cfg, layouts)
		if cfg.output == OutputTuples {
			b.HeaderCells = cells
		} else {
			b.Header = strings.Join(cells, cfg.separator)
		}
	}
	if b.HasSeparator {
		cells := separatorCells(cfg.bodySep, layouts)
		if cfg.output == OutputTuples {
			b.SeparatorCells = cells
		} else {
			b.Separator = strings.Join(cells, cfg.bodySepFill)
		}
	}

	sep := cfg.separator
	switch cfg.output {
	case OutputTuples:
		b.Tuples = b.body.all
	case OutputLines:
		b.Lines = func(yield func(string) bool) {
			b.body.all(func(cells []string) bool {
				return yield(strings.Join(cells, sep))
			})
		}
	default:
		var sb strings.Builder
		first := true
		b.body.all(func(cells []string) bool {
			if !first {
				sb.WriteByte('\n')
			}
			first = false
			sb.WriteString(strings.Join(cells, sep))
			return true
		})
		b.Raw = sb.String()
	}
	return b
}

func headerCells(cfg *config, layouts []Layout) []string {
	cells := make([]string, len(layouts))
	for i, l := range layouts {
		cells[i] = alignCell(cfg.label(i, l.Key), l.Width, l.Align)
	}
	return cells
}

func separatorCells(ch string, layouts []Layout) []string {
	cells := make([]string, len(layouts))
	for i, l := range layouts {
		cells[i] = strings.Repeat(ch, l.Width)
	}
	return cells
}

// renderCells justifies one record into its column cells. Absent values
// become blanks of the column's width.
func renderCells[R Record](r R, layouts []Layout) []string {
	cells := make([]string, len(layouts))
	for i, l := range layouts {
		v, ok := r.Value(l.Key)
		if !ok || v == nil {
			cells[i] = strings.Repeat(" ", l.Width)
			continue
		}
		cells[i] = alignCell(cellText(v), l.Width, l.Align)
	}
	return cells
}

// alignCell pads s to width. Text already at or past width is returned
// unchanged; cells are never truncated.
func alignCell(s string, width int, align Alignment) string {
	pad := width - textWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
