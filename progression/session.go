package progression

import (
	"github.com/google/uuid"
)

// SlotID identifies one slot of a template for alteration overrides.
// Section is set for sectioned templates, Bar (>= 0) for charts, and
// Index alone for flat templates.
type SlotID struct {
	Section string
	Bar     int
	Index   int
}

func FlatSlot(index int) SlotID {
	return SlotID{Bar: -1, Index: index}
}

func SectionSlot(section string, index int) SlotID {
	return SlotID{Section: section, Bar: -1, Index: index}
}

func ChartSlot(bar, index int) SlotID {
	return SlotID{Bar: bar, Index: index}
}

// Session holds the per-viewing-session alteration overrides for one
// template in one key. Overrides never touch the template itself; they
// are applied only at resolution time. Changing the key clears them,
// and selecting another progression means starting a new session.
// A session belongs to a single goroutine.
type Session struct {
	ID        string
	template  Template
	key       string
	overrides map[SlotID]string
}

func NewSession(t Template, key string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		template:  t,
		key:       key,
		overrides: make(map[SlotID]string),
	}
}

func (s *Session) Template() Template { return s.template }
func (s *Session) Key() string        { return s.key }

// SetKey changes the viewing key and drops every override.
func (s *Session) SetKey(key string) {
	s.key = key
	s.overrides = make(map[SlotID]string)
}

// Alter substitutes a slot's quality. Altering back to the slot's
// default removes the entry instead of storing a no-op, which keeps
// the override set minimal and makes IsAltered a membership test.
func (s *Session) Alter(id SlotID, quality string) {
	if def, ok := defaultQuality(s.template, id); ok && def == quality {
		delete(s.overrides, id)
		return
	}
	s.overrides[id] = quality
}

// Revert restores a slot to its template default.
func (s *Session) Revert(id SlotID) {
	delete(s.overrides, id)
}

func (s *Session) IsAltered(id SlotID) bool {
	_, ok := s.overrides[id]
	return ok
}

func (s *Session) NumAltered() int {
	return len(s.overrides)
}

// Resolve produces the session's current view: its template in its
// key with its overrides applied.
func (s *Session) Resolve() (*Result, error) {
	return Resolve(s.template, s.key, s)
}

func (s *Session) override(id SlotID) (string, bool) {
	q, ok := s.overrides[id]
	return q, ok
}

func defaultQuality(t Template, id SlotID) (string, bool) {
	slotAt := func(slots []Slot, i int) (string, bool) {
		if i < 0 || i >= len(slots) {
			return "", false
		}
		return slots[i].Quality, true
	}

	switch tt := t.(type) {
	case Flat:
		return slotAt(tt.Slots, id.Index)
	case Sectioned:
		for _, sec := range tt.Sections {
			if sec.Name == id.Section {
				return slotAt(sec.Slots, id.Index)
			}
		}
	case Chart:
		if id.Bar >= 0 && id.Bar < len(tt.Bars) {
			return slotAt(tt.Bars[id.Bar], id.Index)
		}
	}
	return "", false
}
