/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package shadow

import (
	"iter"
	"slices"
)

// Members is an insertion-ordered mapping of participant ID to Participant.
type Members struct {
	order []string
	byID  map[string]*Participant
}

func newMembers(capacity int) *Members {
	return &Members{
		order: make([]string, 0, capacity),
		byID:  make(map[string]*Participant, capacity),
	}
}

func (m *Members) Len() int {
	return len(m.order)
}

func (m *Members) Get(id string) (*Participant, bool) {
	p, ok := m.byID[id]
	return p, ok
}

func (m *Members) Has(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// Put adds p, or replaces the entry with the same ID in place.
func (m *Members) Put(p *Participant) {
	if _, ok := m.byID[p.ID]; !ok {
		m.order = append(m.order, p.ID)
	}
	m.byID[p.ID] = p
}

func (m *Members) Remove(id string) {
	if _, ok := m.byID[id]; !ok {
		return
	}
	delete(m.byID, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool {
		return s == id
	})
}

// First returns the earliest inserted member still present.
func (m *Members) First() (*Participant, bool) {
	if len(m.order) == 0 {
		return nil, false
	}
	return m.byID[m.order[0]], true
}

// At returns the i-th member in insertion order.
func (m *Members) At(i int) *Participant {
	return m.byID[m.order[i]]
}

// All yields members in insertion order.
func (m *Members) All() iter.Seq[*Participant] {
	return func(yield func(*Participant) bool) {
		for _, id := range m.order {
			if !yield(m.byID[id]) {
				return
			}
		}
	}
}
