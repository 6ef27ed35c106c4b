package veclist

import "iter"

// cursor walks the live chain from both ends. remaining starts at the list's
// length so that mixing forward and backward steps stops where the two ends
// meet. The list must not be modified while a cursor is in use.
type cursor[T any] struct {
	list      *List[T]
	front     int
	back      int
	remaining int
}

func newCursor[T any](l *List[T]) cursor[T] {
	return cursor[T]{
		list:      l,
		front:     l.head,
		back:      l.tail,
		remaining: l.len,
	}
}

func (c *cursor[T]) next() (*slot[T], int) {
	if c.remaining == 0 {
		return nil, none
	}
	h := c.front
	s := c.list.arena.at(h)
	c.front = s.next
	c.remaining--
	return s, h
}

func (c *cursor[T]) nextBack() (*slot[T], int) {
	if c.remaining == 0 {
		return nil, none
	}
	h := c.back
	s := c.list.arena.at(h)
	c.back = s.prev
	c.remaining--
	return s, h
}

// Len is the number of elements not yet visited from either end.
func (c *cursor[T]) Len() int {
	return c.remaining
}

// Iter yields values and their handles, front to back with Next and back to
// front with NextBack.
type Iter[T any] struct {
	cursor[T]
}

func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{newCursor(l)}
}

func (it *Iter[T]) Next() (T, int, bool) {
	s, h := it.next()
	if s == nil {
		var zero T
		return zero, none, false
	}
	return s.value, h, true
}

func (it *Iter[T]) NextBack() (T, int, bool) {
	s, h := it.nextBack()
	if s == nil {
		var zero T
		return zero, none, false
	}
	return s.value, h, true
}

// IterPtr is Iter yielding pointers to the stored values so they can be
// modified in place.
type IterPtr[T any] struct {
	cursor[T]
}

func (l *List[T]) IterPtr() *IterPtr[T] {
	return &IterPtr[T]{newCursor(l)}
}

func (it *IterPtr[T]) Next() (*T, int, bool) {
	s, h := it.next()
	if s == nil {
		return nil, none, false
	}
	return &s.value, h, true
}

func (it *IterPtr[T]) NextBack() (*T, int, bool) {
	s, h := it.nextBack()
	if s == nil {
		return nil, none, false
	}
	return &s.value, h, true
}

// Drain removes elements as it yields them.
type Drain[T any] struct {
	list *List[T]
}

func (l *List[T]) Drain() *Drain[T] {
	return &Drain[T]{list: l}
}

func (d *Drain[T]) Next() (T, bool) {
	return d.list.PopFront()
}

func (d *Drain[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}

func (d *Drain[T]) Len() int {
	return d.list.Len()
}

// All ranges over handles and values front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		for {
			value, h, ok := it.Next()
			if !ok || !yield(h, value) {
				return
			}
		}
	}
}

// Backward ranges over handles and values back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		for {
			value, h, ok := it.NextBack()
			if !ok || !yield(h, value) {
				return
			}
		}
	}
}
