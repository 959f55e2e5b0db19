package rapidtables

// Option configures a single formatting call.
type Option func(*config)

// WidthStrategy selects how column widths are resolved.
type WidthStrategy int

const (
	// WidthFullScan measures every row. Default.
	WidthFullScan WidthStrategy = iota
	// WidthFirstRow measures the first row only. Later rows that are wider
	// overflow their column; they are never re-measured or truncated.
	WidthFirstRow
	// WidthExplicit uses caller-supplied widths without scanning.
	WidthExplicit
)

func (s WidthStrategy) String() string {
	switch s {
	case WidthFirstRow:
		return "first-row"
	case WidthExplicit:
		return "explicit"
	default:
		return "full-scan"
	}
}

type config struct {
	output         Output
	headers        []string
	separator      string
	noAlign        bool
	generateHeader bool
	bodySep        string
	bodySepFill    string
	strategy       WidthStrategy
	fixedWidth     int
	widths         []int
}

func newConfig(opts []Option) config {
	cfg := config{
		output:         OutputRaw,
		separator:      "  ",
		generateHeader: true,
		bodySepFill:    "  ",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOutput sets the body shape. Default: [OutputRaw].
func WithOutput(o Output) Option {
	return func(c *config) { c.output = o }
}

// WithHeaders sets header labels by column position. Columns without a label
// use their key.
func WithHeaders(labels ...string) Option {
	return func(c *config) { c.headers = labels }
}

// WithSeparator sets the string placed between columns. Default: two spaces.
func WithSeparator(sep string) Option {
	return func(c *config) { c.separator = sep }
}

// WithNoAlign left-justifies every column, numeric or not.
func WithNoAlign() Option {
	return func(c *config) { c.noAlign = true }
}

// WithoutHeader disables the header line. The body separator is only built
// together with a header.
func WithoutHeader() Option {
	return func(c *config) { c.generateHeader = false }
}

// WithBodySeparator enables the separator line under the header, made of ch
// repeated to each column's width. An empty ch disables it.
func WithBodySeparator(ch string) Option {
	return func(c *config) { c.bodySep = ch }
}

// WithBodySeparatorFill sets the string placed between separator segments.
// Default: two spaces.
func WithBodySeparatorFill(fill string) Option {
	return func(c *config) { c.bodySepFill = fill }
}

// WithFirstRowWidths sizes columns from the first row only.
func WithFirstRowWidths() Option {
	return func(c *config) {
		c.strategy = WidthFirstRow
		c.widths = nil
	}
}

// WithColumnWidth gives every column the same fixed width. Content longer
// than width is written in full.
func WithColumnWidth(width int) Option {
	return func(c *config) {
		c.strategy = WidthExplicit
		c.fixedWidth = max(width, 0)
		c.widths = nil
	}
}

// WithColumnWidths sets a fixed width per column position. Columns past the
// end of widths get width zero; negative widths count as zero.
func WithColumnWidths(widths ...int) Option {
	return func(c *config) {
		c.strategy = WidthExplicit
		c.fixedWidth = 0
		c.widths = make([]int, len(widths))
		for i, w := range widths {
			c.widths[i] = max(w, 0)
		}
	}
}

// WithWidthStrategy selects full-scan or first-row sizing by value, which
// suits callers mapping a configuration string onto options. For
// [WidthExplicit] use [WithColumnWidth] or [WithColumnWidths].
func WithWidthStrategy(s WidthStrategy) Option {
	return func(c *config) {
		if s == WidthExplicit {
			return
		}
		c.strategy = s
		c.widths = nil
	}
}
