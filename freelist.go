package veclist

// freeList is a stack of deleted slots threaded through the slots
// themselves. The most recently deleted slot is reused first.
type freeList[T any] struct {
	top int
}

func newFreeList[T any]() freeList[T] {
	return freeList[T]{top: none}
}

// push moves the value out of slot h and makes h the new top.
func (f *freeList[T]) push(a *arena[T], h int) T {
	value := a.at(h).take(f.top)
	f.top = h
	return value
}

// pop unlinks and returns the top, if any. The returned slot is still marked
// deleted; the caller overwrites it.
func (f *freeList[T]) pop(a *arena[T]) (int, bool) {
	h := f.top
	if h == none {
		return none, false
	}
	f.top = a.at(h).prev
	return h, true
}

func (f *freeList[T]) reset() {
	f.top = none
}
