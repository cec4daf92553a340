// Package store holds the in-memory counter list and its selection.
//
// Every operation is total: an invalid index or a missing selection leaves
// the store unchanged instead of returning an error.
package store

import (
	"math"

	"github.com/studiowebux/tally/internal/types"
)

// Direction is the direction of a selection move
type Direction int

const (
	Previous Direction = iota
	Next
)

// CounterStore is an ordered list of counters with an optional selection
type CounterStore struct {
	counters []types.Counter
	selected int // -1 when nothing is selected
}

// New creates a store holding a copy of counters with nothing selected
func New(counters []types.Counter) *CounterStore {
	s := &CounterStore{selected: -1}
	if len(counters) > 0 {
		s.counters = make([]types.Counter, len(counters))
		copy(s.counters, counters)
	}
	return s
}

// Counters returns a copy of the counters in display order
func (s *CounterStore) Counters() []types.Counter {
	out := make([]types.Counter, len(s.counters))
	copy(out, s.counters)
	return out
}

// Len returns the number of counters
func (s *CounterStore) Len() int {
	return len(s.counters)
}

// Selected returns the selected index, if any
func (s *CounterStore) Selected() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

// ClearSelection deselects the current counter
func (s *CounterStore) ClearSelection() {
	s.selected = -1
}

// Append adds a counter with a zero count at the end and returns its index
func (s *CounterStore) Append(name string) int {
	s.counters = append(s.counters, types.NewCounter(name))
	return len(s.counters) - 1
}

// Adjust adds delta to the counter at index, saturating at the int64 bounds
func (s *CounterStore) Adjust(index int, delta int64) {
	if !s.valid(index) {
		return
	}
	s.counters[index].Count = saturatingAdd(s.counters[index].Count, delta)
}

// AdjustSelected adjusts the selected counter, if any
func (s *CounterStore) AdjustSelected(delta int64) {
	if index, ok := s.Selected(); ok {
		s.Adjust(index, delta)
	}
}

// Remove deletes the counter at index.
//
// The selection index is kept while it still points into the list, so it
// moves on to the counter that followed the removed one; a selection that
// would point past the end is cleared.
func (s *CounterStore) Remove(index int) {
	if !s.valid(index) {
		return
	}
	s.counters = append(s.counters[:index], s.counters[index+1:]...)
	s.revalidate()
}

// RemoveSelected deletes the selected counter, if any
func (s *CounterStore) RemoveSelected() {
	if index, ok := s.Selected(); ok {
		s.Remove(index)
	}
}

// MoveSelection moves the selection by one without wrapping.
// With nothing selected, Next selects the first counter and Previous the last.
func (s *CounterStore) MoveSelection(dir Direction) {
	if len(s.counters) == 0 {
		s.selected = -1
		return
	}

	last := len(s.counters) - 1
	if s.selected < 0 {
		if dir == Next {
			s.selected = 0
		} else {
			s.selected = last
		}
		return
	}

	switch dir {
	case Previous:
		if s.selected > 0 {
			s.selected--
		}
	case Next:
		if s.selected < last {
			s.selected++
		}
	}
}

func (s *CounterStore) valid(index int) bool {
	return index >= 0 && index < len(s.counters)
}

func (s *CounterStore) revalidate() {
	if s.selected >= len(s.counters) {
		s.selected = -1
	}
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}
