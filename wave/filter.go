// SPDX-License-Identifier: EPL-2.0

package wave

import "fmt"

// Filter is a pure transformation from one Wave to another. Any parameters
// a filter needs must be captured by the function value at construction
// time. A filter may change the buffer's length and format intentionally
// (e.g., decimation or channel downmixing).
type Filter[T Float] func(Wave[T]) (Wave[T], error)

// Filter applies f to w, returning f's result. A failing filter is
// reported as ErrFilterFailed wrapping the underlying cause; the input is
// logically consumed either way and must not be reused on success.
//
// Chained application w.Filter(f1) then .Filter(f2) is equivalent to
// f2(f1(w)).
func (w Wave[T]) Filter(f Filter[T]) (Wave[T], error) {
	out, err := f(w)
	if err != nil {
		return Wave[T]{}, fmt.Errorf("%w: %w", ErrFilterFailed, err)
	}

	return out, nil
}

// Chain composes filters into one, applied first to last. The first
// failing filter aborts the chain and its error is returned unwrapped, so
// applying the chained filter through Wave.Filter wraps it exactly once.
func Chain[T Float](filters ...Filter[T]) Filter[T] {
	return func(w Wave[T]) (Wave[T], error) {
		cur := w
		for _, f := range filters {
			next, err := f(cur)
			if err != nil {
				return Wave[T]{}, err
			}
			cur = next
		}

		return cur, nil
	}
}
