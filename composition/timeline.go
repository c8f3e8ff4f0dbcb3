// Package composition sequences values over symbolic time.
package composition

import (
	"sort"

	"github.com/jsphweid/musicobjects/rhythm"
	"github.com/pkg/errors"
)

// Entry is a value placed at a position measured from the timeline start.
type Entry[V any] struct {
	Position rhythm.Duration
	Value    V
}

// Timeline maps positions to values and iterates in ascending position
// order. It is immutable: Insert and Remove return a new Timeline and leave
// the receiver untouched. The zero value is an empty timeline.
type Timeline[V any] struct {
	entries []Entry[V]
}

func New[V any]() Timeline[V] {
	return Timeline[V]{}
}

// search finds the first entry at or after pos.
func (t Timeline[V]) search(pos rhythm.Duration) (int, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return !t.entries[i].Position.Less(pos)
	})
	return i, i < len(t.entries) && t.entries[i].Position.Equal(pos)
}

// Insert places v at pos, replacing any value already there. Positions are
// compared exactly, so 1/4 and 2/8 are the same slot.
func (t Timeline[V]) Insert(pos rhythm.Duration, v V) (Timeline[V], error) {
	if !pos.Valid() {
		return t, errors.Wrapf(rhythm.ErrInvalidRatio, "timeline position %v", pos)
	}

	i, found := t.search(pos)
	entries := make([]Entry[V], 0, len(t.entries)+1)
	entries = append(entries, t.entries[:i]...)
	entries = append(entries, Entry[V]{Position: pos, Value: v})
	if found {
		i++
	}
	entries = append(entries, t.entries[i:]...)
	return Timeline[V]{entries: entries}, nil
}

func (t Timeline[V]) Remove(pos rhythm.Duration) Timeline[V] {
	i, found := t.search(pos)
	if !found || !pos.Valid() {
		return t
	}
	entries := make([]Entry[V], 0, len(t.entries)-1)
	entries = append(entries, t.entries[:i]...)
	entries = append(entries, t.entries[i+1:]...)
	return Timeline[V]{entries: entries}
}

func (t Timeline[V]) Get(pos rhythm.Duration) (V, bool) {
	i, found := t.search(pos)
	if !found || !pos.Valid() {
		var zero V
		return zero, false
	}
	return t.entries[i].Value, true
}

func (t Timeline[V]) Len() int {
	return len(t.entries)
}

// Entries returns a copy in ascending position order.
func (t Timeline[V]) Entries() []Entry[V] {
	return append([]Entry[V](nil), t.entries...)
}

func (t Timeline[V]) Positions() []rhythm.Duration {
	res := make([]rhythm.Duration, 0, len(t.entries))
	for _, e := range t.entries {
		res = append(res, e.Position)
	}
	return res
}

// Each visits entries in order until fn returns false.
func (t Timeline[V]) Each(fn func(Entry[V]) bool) {
	for _, e := range t.entries {
		if !fn(e) {
			return
		}
	}
}

func (t Timeline[V]) First() (Entry[V], bool) {
	if len(t.entries) == 0 {
		return Entry[V]{}, false
	}
	return t.entries[0], true
}

func (t Timeline[V]) Last() (Entry[V], bool) {
	if len(t.entries) == 0 {
		return Entry[V]{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Range keeps the entries with from <= position < to. An invalid bound
// selects nothing.
func (t Timeline[V]) Range(from, to rhythm.Duration) Timeline[V] {
	if !from.Valid() || !to.Valid() {
		return Timeline[V]{}
	}
	start, _ := t.search(from)
	end, _ := t.search(to)
	if end < start {
		end = start
	}
	return Timeline[V]{entries: append([]Entry[V](nil), t.entries[start:end]...)}
}
