// A doubly linked list stored in a single growable slice. Elements are
// addressed by integer handles which stay valid until the element is deleted.
package veclist

import (
	"fmt"
	"strings"
)

// List is not safe for concurrent use. Wrap it in a mutex if it has to be
// shared. The zero value is an empty list ready to use.
//
// Handles carry no generation: once a handle is deleted, a later insertion may
// reuse it and the old handle then names the new element.
type List[T any] struct {
	arena arena[T]
	free  freeList[T]
	head  int
	tail  int
	len   int
}

func New[T any]() *List[T] {
	return WithCapacity[T](0)
}

// WithCapacity reserves room for n elements. Cap() is still 0 until elements
// are inserted.
func WithCapacity[T any](n int) *List[T] {
	return &List[T]{
		arena: newArena[T](n),
		free:  newFreeList[T](),
		head:  none,
		tail:  none,
	}
}

// PushBack appends value and returns its handle. Average O(1).
func (l *List[T]) PushBack(value T) int {
	h := l.alloc(value)
	l.linkBack(h)
	l.len++
	l.check()
	return h
}

// PushFront prepends value and returns its handle. Average O(1).
func (l *List[T]) PushFront(value T) int {
	h := l.alloc(value)
	l.linkFront(h)
	l.len++
	l.check()
	return h
}

// InsertBefore places value immediately before the live element mark.
// Returns false, and inserts nothing, if mark is not live.
func (l *List[T]) InsertBefore(value T, mark int) (int, bool) {
	if _, ok := l.arena.live(mark); !ok {
		return none, false
	}
	h := l.alloc(value)
	m := l.arena.at(mark)
	s := l.arena.at(h)
	s.prev = m.prev
	s.next = mark
	if m.prev == none {
		l.head = h
	} else {
		l.arena.at(m.prev).next = h
	}
	m.prev = h
	l.len++
	l.check()
	return h, true
}

// InsertAfter places value immediately after the live element mark.
// Returns false, and inserts nothing, if mark is not live.
func (l *List[T]) InsertAfter(value T, mark int) (int, bool) {
	if _, ok := l.arena.live(mark); !ok {
		return none, false
	}
	h := l.alloc(value)
	m := l.arena.at(mark)
	s := l.arena.at(h)
	s.next = m.next
	s.prev = mark
	if m.next == none {
		l.tail = h
	} else {
		l.arena.at(m.next).prev = h
	}
	m.next = h
	l.len++
	l.check()
	return h, true
}

// PopFront removes the first element. O(1)
func (l *List[T]) PopFront() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.Delete(l.head)
}

// PopBack removes the last element. O(1)
func (l *List[T]) PopBack() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.Delete(l.tail)
}

// Delete removes the element named by h and returns its value. Deleting an
// already deleted handle is a no-op that returns false. A handle the list
// never allocated is a programming error and panics with
// ErrHandleOutOfRange. O(1)
func (l *List[T]) Delete(h int) (T, bool) {
	if !l.arena.valid(h) {
		panic(outOfRange(h, l.arena.size()))
	}
	s := l.arena.at(h)
	if s.isDeleted() {
		var zero T
		return zero, false
	}
	l.unlink(s)
	value := l.free.push(&l.arena, h)
	l.len--
	l.check()
	return value, true
}

// MoveToFront relinks the live element h as the first element. Its handle
// does not change.
func (l *List[T]) MoveToFront(h int) bool {
	s, ok := l.arena.live(h)
	if !ok {
		return false
	}
	if l.head != h {
		l.unlink(s)
		l.linkFront(h)
		l.check()
	}
	return true
}

// MoveToBack relinks the live element h as the last element. Its handle does
// not change.
func (l *List[T]) MoveToBack(h int) bool {
	s, ok := l.arena.live(h)
	if !ok {
		return false
	}
	if l.tail != h {
		l.unlink(s)
		l.linkBack(h)
		l.check()
	}
	return true
}

// Front returns the first value and its handle. O(1)
func (l *List[T]) Front() (T, int, bool) {
	return l.peek(l.head)
}

// Back returns the last value and its handle. O(1)
func (l *List[T]) Back() (T, int, bool) {
	return l.peek(l.tail)
}

// FrontPtr returns a pointer to the first value, or nil when the list is
// empty. The pointer is only valid until the next insertion.
func (l *List[T]) FrontPtr() (*T, int) {
	if l.len == 0 {
		return nil, none
	}
	return &l.arena.at(l.head).value, l.head
}

// BackPtr returns a pointer to the last value, or nil when the list is empty.
// The pointer is only valid until the next insertion.
func (l *List[T]) BackPtr() (*T, int) {
	if l.len == 0 {
		return nil, none
	}
	return &l.arena.at(l.tail).value, l.tail
}

// Get returns the value named by h. ok is false when h is out of range or
// deleted.
func (l *List[T]) Get(h int) (T, bool) {
	s, ok := l.arena.live(h)
	if !ok {
		var zero T
		return zero, false
	}
	return s.value, true
}

// GetPtr returns a pointer to the value named by h, or nil. The pointer is
// only valid until the next insertion.
func (l *List[T]) GetPtr(h int) *T {
	s, ok := l.arena.live(h)
	if !ok {
		return nil
	}
	return &s.value
}

// At is Get for handles the caller knows to be live. It panics with
// ErrInvalidHandle otherwise.
func (l *List[T]) At(h int) T {
	s, ok := l.arena.live(h)
	if !ok {
		panic(invalidHandle(h))
	}
	return s.value
}

// Set replaces the value named by h in place.
func (l *List[T]) Set(h int, value T) bool {
	s, ok := l.arena.live(h)
	if !ok {
		return false
	}
	s.value = value
	return true
}

func (l *List[T]) Contains(h int) bool {
	_, ok := l.arena.live(h)
	return ok
}

// Next returns the handle following h in list order.
func (l *List[T]) Next(h int) (int, bool) {
	s, ok := l.arena.live(h)
	if !ok || s.next == none {
		return none, false
	}
	return s.next, true
}

// Prev returns the handle preceding h in list order.
func (l *List[T]) Prev(h int) (int, bool) {
	s, ok := l.arena.live(h)
	if !ok || s.prev == none {
		return none, false
	}
	return s.prev, true
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Cap is the number of slots ever allocated, live or deleted.
func (l *List[T]) Cap() int {
	return l.arena.size()
}

// Reserved is the capacity of the backing slice.
func (l *List[T]) Reserved() int {
	return l.arena.reserved()
}

// Free is the number of deleted slots waiting to be reused.
func (l *List[T]) Free() int {
	return l.arena.size() - l.len
}

// Clear drops all storage. The list behaves like a new one afterwards.
func (l *List[T]) Clear() {
	l.arena.reset()
	l.free.reset()
	l.head = none
	l.tail = none
	l.len = 0
}

// Slice copies the values in list order.
func (l *List[T]) Slice() []T {
	values := make([]T, 0, l.len)
	if l.len == 0 {
		return values
	}
	for h := l.head; h != none; {
		s := l.arena.at(h)
		values = append(values, s.value)
		h = s.next
	}
	return values
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for h, i := l.head, 0; i < l.len; i++ {
		s := l.arena.at(h)
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, s.value)
		h = s.next
	}
	sb.WriteByte(']')
	return sb.String()
}

// alloc stores value in a recycled slot if there is one, otherwise it grows
// the arena. The new slot is not linked yet.
func (l *List[T]) alloc(value T) int {
	l.lazyInit()
	if h, ok := l.free.pop(&l.arena); ok {
		*l.arena.at(h) = occupied(value, none, none)
		return h
	}
	return l.arena.grow(occupied(value, none, none))
}

func (l *List[T]) linkFront(h int) {
	s := l.arena.at(h)
	s.prev = none
	s.next = l.head
	if l.head == none {
		l.tail = h
	} else {
		l.arena.at(l.head).prev = h
	}
	l.head = h
}

func (l *List[T]) linkBack(h int) {
	s := l.arena.at(h)
	s.next = none
	s.prev = l.tail
	if l.tail == none {
		l.head = h
	} else {
		l.arena.at(l.tail).next = h
	}
	l.tail = h
}

func (l *List[T]) unlink(s *slot[T]) {
	next := s.next
	prev := s.prev

	if next == none {
		l.tail = prev
	} else {
		l.arena.at(next).prev = prev
	}

	if prev == none {
		l.head = next
	} else {
		l.arena.at(prev).next = next
	}
	s.next = none
	s.prev = none
}

// lazyInit lazily initializes a zero List value. A constructed or cleared
// list has head set to none, so head 0 over an empty arena only happens
// before first use.
func (l *List[T]) lazyInit() {
	if l.head == 0 && l.arena.size() == 0 {
		l.head = none
		l.tail = none
		l.free.reset()
	}
}

func (l *List[T]) peek(h int) (T, int, bool) {
	if l.len == 0 {
		var zero T
		return zero, none, false
	}
	return l.arena.at(h).value, h, true
}

// verify walks both chains and reports the first broken invariant.
func (l *List[T]) verify() error {
	l.lazyInit()
	if (l.len == 0) != (l.head == none) || (l.len == 0) != (l.tail == none) {
		return fmt.Errorf("len %d with head %d and tail %d", l.len, l.head, l.tail)
	}
	size := l.arena.size()
	if l.len > size {
		return fmt.Errorf("len %d exceeds cap %d", l.len, size)
	}

	n, prev := 0, none
	for h := l.head; h != none; {
		if n == l.len {
			return fmt.Errorf("live chain longer than len %d", l.len)
		}
		s, ok := l.arena.live(h)
		if !ok {
			return fmt.Errorf("live chain reaches non-live slot %d", h)
		}
		if s.prev != prev {
			return fmt.Errorf("slot %d prev is %d, expected %d", h, s.prev, prev)
		}
		n++
		prev = h
		h = s.next
	}
	if n != l.len {
		return fmt.Errorf("live chain has %d elements, len is %d", n, l.len)
	}
	if prev != l.tail {
		return fmt.Errorf("live chain ends at %d, tail is %d", prev, l.tail)
	}

	free := 0
	for h := l.free.top; h != none; h = l.arena.at(h).prev {
		if free == size-l.len {
			return fmt.Errorf("free stack longer than %d", size-l.len)
		}
		if !l.arena.valid(h) || !l.arena.at(h).isDeleted() {
			return fmt.Errorf("free stack reaches non-deleted slot %d", h)
		}
		free++
	}
	if free != size-l.len {
		return fmt.Errorf("free stack has %d slots, expected %d", free, size-l.len)
	}
	return nil
}

func (l *List[T]) check() {
	if !debug {
		return
	}
	if err := l.verify(); err != nil {
		panic("veclist: " + err.Error())
	}
}
