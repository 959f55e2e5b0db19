package rapidtables

import (
	"iter"
	"slices"
)

// FormatIter formats records from an iterator. With the default full-scan
// strategy every record is collected first, since widths depend on all of
// them. With first-row or explicit widths only the first record is read up
// front and the body pulls the rest from seq as it is consumed; call
// [Bundle.Close] when abandoning such a body before its end.
func FormatIter[R Record](seq iter.Seq[R], opts ...Option) *Bundle {
	cfg := newConfig(opts)
	if cfg.strategy == WidthFullScan {
		return FormatTable(slices.Collect(seq), opts...)
	}

	next, stop := iter.Pull(seq)
	first, ok := next()
	if !ok {
		stop()
		return nil
	}
	keys := slices.Clone(first.Keys())
	layouts := resolve(keys, []R{first}, &cfg)

	pending := true
	cursor := func() (R, bool) {
		if pending {
			pending = false
			return first, true
		}
		return next()
	}
	return newBundle(&cfg, layouts, renderer(cursor, layouts), stop)
}

// FormatChan formats records received from ch.
// It is a thin wrapper around [FormatIter].
func FormatChan[R Record](ch <-chan R, opts ...Option) *Bundle {
	return FormatIter(chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
