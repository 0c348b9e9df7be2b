package latab

import (
	"fmt"
	"io"
	"iter"
)

// WriteTextIter writes a plain-text table whose rows arrive from seq. The
// header is written before the first row is pulled and each row is written
// as soon as it arrives, so seq may be unbounded.
func WriteTextIter(w io.Writer, seq iter.Seq[[]Cell], opts TextOptions) error {
	r := newTextRenderer(opts)
	for _, line := range r.head() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	var streamErr error
	seq(func(row []Cell) bool {
		if _, err := fmt.Fprintln(w, r.row(row)); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	if streamErr != nil {
		return streamErr
	}
	_, err := fmt.Fprintln(w, r.divider)
	return err
}

// WriteTextChan writes a plain-text table whose rows arrive on ch.
// It is a thin wrapper around [WriteTextIter].
func WriteTextChan(w io.Writer, ch <-chan []Cell, opts TextOptions) error {
	return WriteTextIter(w, chanToIter(ch), opts)
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
