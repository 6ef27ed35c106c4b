package veclist

import "iter"

// Bounded is a List that never holds more than its configured capacity.
// Once full, every Add evicts the last element and places the new value at
// the front; the other elements are kept. The zero value is an empty bounded
// list with the default capacity.
type Bounded[T any] struct {
	list     *List[T]
	capacity int
	onEvict  func(value T)
}

// Create a new bounded list with the specified configuration
// See veclist.Configure() for creating a configuration
func NewBounded[T any](config *Configuration[T]) *Bounded[T] {
	capacity := config.capacity
	if capacity < 1 {
		capacity = defaultCapacity
	}
	return &Bounded[T]{
		list:     WithCapacity[T](capacity),
		capacity: capacity,
		onEvict:  config.onEvict,
	}
}

// Add inserts value and returns its handle. Below capacity the value is
// appended; at capacity the last element is evicted and value becomes the
// first element.
func (b *Bounded[T]) Add(value T) int {
	b.lazyInit()
	if b.list.Len() < b.capacity {
		return b.list.PushBack(value)
	}
	if evicted, ok := b.list.PopBack(); ok && b.onEvict != nil {
		b.onEvict(evicted)
	}
	return b.list.PushFront(value)
}

func (b *Bounded[T]) Get(h int) (T, bool) {
	b.lazyInit()
	return b.list.Get(h)
}

func (b *Bounded[T]) Len() int {
	b.lazyInit()
	return b.list.Len()
}

func (b *Bounded[T]) IsEmpty() bool {
	b.lazyInit()
	return b.list.IsEmpty()
}

// Cap is the configured bound.
func (b *Bounded[T]) Cap() int {
	b.lazyInit()
	return b.capacity
}

func (b *Bounded[T]) Iter() *Iter[T] {
	b.lazyInit()
	return b.list.Iter()
}

func (b *Bounded[T]) All() iter.Seq2[int, T] {
	b.lazyInit()
	return b.list.All()
}

func (b *Bounded[T]) Slice() []T {
	b.lazyInit()
	return b.list.Slice()
}

func (b *Bounded[T]) String() string {
	b.lazyInit()
	return b.list.String()
}

// Clear removes every element without invoking the eviction callback.
func (b *Bounded[T]) Clear() {
	b.lazyInit()
	b.list.Clear()
}

func (b *Bounded[T]) lazyInit() {
	if b.list == nil {
		b.list = New[T]()
	}
	if b.capacity < 1 {
		b.capacity = defaultCapacity
	}
}
