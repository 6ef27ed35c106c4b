package veclist

// arena owns every slot. It only grows (by appending) and is released as a
// whole by reset.
type arena[T any] struct {
	slots []slot[T]
}

func newArena[T any](reserve int) arena[T] {
	if reserve < 0 {
		reserve = 0
	}
	return arena[T]{slots: make([]slot[T], 0, reserve)}
}

// grow appends s and returns its handle.
func (a *arena[T]) grow(s slot[T]) int {
	h := len(a.slots)
	a.slots = append(a.slots, s)
	return h
}

// at requires 0 <= h < size(); anything else panics.
func (a *arena[T]) at(h int) *slot[T] {
	return &a.slots[h]
}

func (a *arena[T]) valid(h int) bool {
	return h >= 0 && h < len(a.slots)
}

// live returns the slot for h if h names an occupied slot.
func (a *arena[T]) live(h int) (*slot[T], bool) {
	if !a.valid(h) {
		return nil, false
	}
	s := &a.slots[h]
	if !s.hasValue() {
		return nil, false
	}
	return s, true
}

func (a *arena[T]) size() int {
	return len(a.slots)
}

func (a *arena[T]) reserved() int {
	return cap(a.slots)
}

func (a *arena[T]) reset() {
	a.slots = nil
}
