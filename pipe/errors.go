package pipe

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrDuplicateSubscription is returned by Subscribe when the same listener is
// already registered on the observable.
var ErrDuplicateSubscription = errors.New("pipe: listener already subscribed")

// ErrNotASlice signals a collection operation over a pipe whose value is not a
// list of the expected element type.
var ErrNotASlice = errors.New("pipe: value is not a slice")

type DuplicateSubscriptionError struct {
	// Token of the existing subscription.
	Token Token
}

func (e *DuplicateSubscriptionError) Error() string {
	return fmt.Sprintf("%s (token %d)", ErrDuplicateSubscription, e.Token)
}

func (e *DuplicateSubscriptionError) Is(target error) bool {
	return target == ErrDuplicateSubscription
}

type NotASliceError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *NotASliceError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("%s: want %s, got %s", ErrNotASlice, e.Want, got)
}

func (e *NotASliceError) Is(target error) bool {
	return target == ErrNotASlice
}
