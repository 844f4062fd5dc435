// Package handshake implements a symmetric rendezvous channel that is used
// exactly once and then discarded.
//
// A channel is created with two endpoints, each of which may either deposit
// a value for its peer, retrieve a value its peer has deposited, or combine
// a value of its own with whatever the peer deposits. Neither endpoint is
// distinguished as the sender or the receiver: whichever endpoint acts first
// stores a value, and whichever acts second completes the exchange. No
// operation blocks waiting for the peer.
//
// Each endpoint can complete at most one exchange. Operations that finish
// the handshake consume the endpoint, and any further use of a consumed
// endpoint panics. An endpoint that will not be used must be released with
// its Discard or Take method so the peer can observe cancellation.
package handshake

import (
	"errors"
	"sync"
)

// ErrCancelled is the sentinel error reported when the peer endpoint was
// discarded before a value could be exchanged. Cancellation is permanent:
// every subsequent operation on the surviving endpoint reports it again.
var ErrCancelled = errors.New("handshake channel is cancelled")

// The shared slot is in exactly one of three states. Cancelled is terminal.
const (
	stateUnset int8 = iota // no value stored, channel viable
	stateSet               // one endpoint has deposited a value
	stateCancelled         // one endpoint was discarded before an exchange
)

// A cell is the slot shared by the two endpoints of a channel. All access
// to its fields must hold μ. There is no reference count: the state machine
// fully determines which endpoint action is the last to touch the cell, and
// that action zeroes any stored value before letting go.
type cell[T any] struct {
	μ     sync.Mutex
	state int8
	value T
}

// release drops the stored value so it does not outlive the exchange.
// The caller must hold c.μ.
func (c *cell[T]) release() {
	var zero T
	c.value = zero
}

// New creates a channel and returns its two endpoints. The endpoints are
// interchangeable, and either may be sent to another goroutine.
func New[T any]() (u, v *Endpoint[T]) {
	c := new(cell[T])
	return &Endpoint[T]{common: c}, &Endpoint[T]{common: c}
}

// Wrap creates a channel that has already been pushed to, and returns the
// remaining endpoint. It is equivalent to creating a pair with New, pushing
// value on one endpoint, and keeping the other.
func Wrap[T any](value T) *Endpoint[T] {
	return &Endpoint[T]{common: &cell[T]{state: stateSet, value: value}}
}
