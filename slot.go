package veclist

// none marks an absent link (no neighbor, empty free stack, empty list).
const none = -1

type slotState uint8

const (
	slotOccupied slotState = iota
	slotDeleted
)

// slot is one arena position. While occupied it carries a value and its
// neighbors in the live chain. Once deleted, prev is the link to the
// next-older entry of the free stack and next is unused.
type slot[T any] struct {
	value T
	next  int
	prev  int
	state slotState
}

func occupied[T any](value T, prev, next int) slot[T] {
	return slot[T]{
		value: value,
		next:  next,
		prev:  prev,
		state: slotOccupied,
	}
}

func (s *slot[T]) isDeleted() bool {
	return s.state == slotDeleted
}

func (s *slot[T]) hasValue() bool {
	return s.state == slotOccupied
}

// take moves the value out and flips the slot to deleted, linking it to the
// previous free-stack top.
func (s *slot[T]) take(freeTop int) T {
	value := s.value
	*s = slot[T]{
		next:  none,
		prev:  freeTop,
		state: slotDeleted,
	}
	return value
}
