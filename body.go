package rapidtables

// body is the pull side of a lazy table body. Rows are rendered one at a
// time as the consumer asks for them; nothing is buffered.
type body struct {
	next func() ([]string, bool)
	stop func()
	done bool
}

// all yields the remaining rows in order. Breaking out of the loop leaves the
// cursor on the next row.
func (b *body) all(yield func([]string) bool) {
	for !b.done {
		cells, ok := b.next()
		if !ok {
			b.finish()
			return
		}
		if !yield(cells) {
			return
		}
	}
}

func (b *body) finish() {
	if b.done {
		return
	}
	b.done = true
	if b.stop != nil {
		b.stop()
	}
}

func sliceCursor[R Record](table []R) func() (R, bool) {
	i := 0
	return func() (R, bool) {
		if i >= len(table) {
			var zero R
			return zero, false
		}
		r := table[i]
		i++
		return r, true
	}
}

func renderer[R Record](next func() (R, bool), layouts []Layout) func() ([]string, bool) {
	return func() ([]string, bool) {
		r, ok := next()
		if !ok {
			return nil, false
		}
		return renderCells(r, layouts), true
	}
}
