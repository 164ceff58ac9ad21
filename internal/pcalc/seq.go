package pcalc

import "fmt"

// DefaultLimit is the element limit used by an Evaluator whose Limit is
// not positive.
const DefaultLimit = 4096

const minSeqCap = 8

// LimitError indicates that a sequence would have grown past its limit.
type LimitError struct {
	Limit int
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("sequence limit %v exceeded", lim.Limit)
}

// seq is a growable sequence backing the value stack, operator stack and
// output queue. Capacity doubles when full, clamped to limit; pushing past
// limit fails rather than truncating. Elements are only ever addressed by
// index, never by reference across a push.
type seq[T any] struct {
	items []T
	limit int
}

func newSeq[T any](limit int) seq[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return seq[T]{limit: limit}
}

func (s *seq[T]) len() int { return len(s.items) }

func (s *seq[T]) get(i int) T { return s.items[i] }

// top returns the most recently pushed element; s must not be empty.
func (s *seq[T]) top() T { return s.items[len(s.items)-1] }

func (s *seq[T]) push(v T) error {
	if err := s.grow(len(s.items) + 1); err != nil {
		return err
	}
	s.items = append(s.items, v)
	return nil
}

// pop removes and returns the top element; callers check len first.
func (s *seq[T]) pop() (v T) {
	i := len(s.items) - 1
	v, s.items = s.items[i], s.items[:i]
	return v
}

func (s *seq[T]) truncate(n int) {
	if n < len(s.items) {
		s.items = s.items[:n]
	}
}

func (s *seq[T]) grow(need int) error {
	if need <= cap(s.items) {
		return nil
	}
	if need > s.limit {
		return LimitError{s.limit}
	}
	size := 2 * cap(s.items)
	if size < minSeqCap {
		size = minSeqCap
	}
	if size > s.limit {
		size = s.limit
	}
	items := make([]T, len(s.items), size)
	copy(items, s.items)
	s.items = items
	return nil
}
