// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package sequencereader

import (
	"errors"
)

// ErrSequenceEnded defines that there are no more elements to read.
var ErrSequenceEnded = errors.New("the sequence is ended")

// SequenceReader hands out elements of a sequence strictly in their original
// order together with their position, e.g. signature i for input i.
type SequenceReader[T any] struct {
	items []T
	pos   int
}

// New is a constructor for SequenceReader.
func New[T any](items []T) *SequenceReader[T] {
	return &SequenceReader[T]{items: items}
}

// HasNext returns true if sequence is not ended.
func (sr *SequenceReader[T]) HasNext() bool {
	return sr.pos < len(sr.items)
}

// Next returns position and value of the next element.
func (sr *SequenceReader[T]) Next() (int, T, error) {
	if !sr.HasNext() {
		var zero T
		return sr.pos, zero, ErrSequenceEnded
	}

	idx := sr.pos
	sr.pos++

	return idx, sr.items[idx], nil
}

// Remaining returns how many elements are left.
func (sr *SequenceReader[T]) Remaining() int {
	return len(sr.items) - sr.pos
}

// Each calls fn for every remaining element, stops on the first error.
func (sr *SequenceReader[T]) Each(fn func(idx int, item T) error) error {
	for sr.HasNext() {
		idx, item, _ := sr.Next()
		if err := fn(idx, item); err != nil {
			return err
		}
	}

	return nil
}
