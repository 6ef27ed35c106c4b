package veclist

const defaultCapacity = 1000

type Configuration[T any] struct {
	capacity int
	onEvict  func(value T)
}

// Creates a configuration object with sensible defaults
// Use this as the start of the fluent configuration:
// e.g.: veclist.NewBounded(veclist.Configure[string]().Capacity(64))
func Configure[T any]() *Configuration[T] {
	return &Configuration[T]{
		capacity: defaultCapacity,
	}
}

// The maximum number of elements the bounded list holds
// Values smaller than 1 are ignored
// [1000]
func (c *Configuration[T]) Capacity(max int) *Configuration[T] {
	if max > 0 {
		c.capacity = max
	}
	return c
}

// Register a callback to be invoked with every value the bounded list
// evicts to make room for a new one
func (c *Configuration[T]) OnEvict(callback func(value T)) *Configuration[T] {
	c.onEvict = callback
	return c
}
