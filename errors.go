package veclist

import (
	"errors"
	"fmt"
)

var (
	// ErrHandleOutOfRange is the panic cause when Delete receives a handle
	// that was never allocated by the list.
	ErrHandleOutOfRange = errors.New("veclist: handle out of range")

	// ErrInvalidHandle is the panic cause when At receives a handle that does
	// not name a live element.
	ErrInvalidHandle = errors.New("veclist: invalid handle")
)

func outOfRange(h, size int) error {
	return fmt.Errorf("%w: %d not in [0:%d)", ErrHandleOutOfRange, h, size)
}

func invalidHandle(h int) error {
	return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
}
