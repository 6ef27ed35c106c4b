// A wrapper around *testing.T. I hate the if a != b { t.ErrorF(....) } pattern.
// Used by the package's own tests; suites that prefer the fluent style use
// github.com/karlseguin/expect instead.
package assert

import (
	"errors"
	"reflect"
	"testing"
)

// a == b
func Equal[T comparable](t *testing.T, actual T, expected T) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected '%v' to equal '%v'", actual, expected)
		t.FailNow()
	}
}

// Two lists are equal (same length & same values in the same order)
func List[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	if len(actuals) != len(expecteds) {
		t.Errorf("expected %v to equal %v (length %d != %d)", actuals, expecteds, len(actuals), len(expecteds))
		t.FailNow()
	}

	for i, actual := range actuals {
		if actual != expecteds[i] {
			t.Errorf("expected %v to equal %v (index %d)", actuals, expecteds, i)
			t.FailNow()
		}
	}
}

// A value is nil
func Nil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual != nil && !reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be nil", actual)
		t.FailNow()
	}
}

// A value is not nil
func NotNil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual == nil || reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be not nil", actual)
		t.FailNow()
	}
}

// A value is true
func True(t *testing.T, actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
		t.FailNow()
	}
}

// A value is false
func False(t *testing.T, actual bool) {
	t.Helper()
	if actual {
		t.Error("expected false, got true")
		t.FailNow()
	}
}

// errors.Is(actual, expected)
func ErrorIs(t *testing.T, actual error, expected error) {
	t.Helper()
	if !errors.Is(actual, expected) {
		t.Errorf("expected '%v' to be '%v'", actual, expected)
		t.FailNow()
	}
}

// fn panics with an error wrapping expected
func Panics(t *testing.T, expected error, fn func()) {
	t.Helper()
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	if recovered == nil {
		t.Errorf("expected a panic with '%v'", expected)
		t.FailNow()
	}
	err, ok := recovered.(error)
	if !ok {
		t.Errorf("expected a panic with '%v', got '%v'", expected, recovered)
		t.FailNow()
	}
	ErrorIs(t, err, expected)
}
