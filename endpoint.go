package handshake

import "sync/atomic"

// An Endpoint is one of the two handles to a channel. It is safe for
// concurrent use by multiple goroutines, and carries no affinity to the
// goroutine that created it.
//
// An endpoint is spent once a Push stores a value, a Pull takes one, or a
// Join, Take, or Discard completes. Using a spent endpoint is a programming
// error and panics.
type Endpoint[T any] struct {
	spent  atomic.Bool
	common *cell[T]
}

// use returns the shared cell, or panics if e has already been consumed.
func (e *Endpoint[T]) use() *cell[T] {
	if e.spent.Load() {
		panic("handshake: use of a consumed endpoint")
	}
	return e.common
}

// Push attempts to deposit value for the peer. Push does not block.
//
// If no value is stored yet, value is deposited, the endpoint is consumed,
// and Push reports true. If the peer has already deposited a value, nothing
// changes: Push reports false with a nil error, the endpoint remains live,
// and the caller keeps value; it may call Pull to retrieve the peer's value
// instead. If the peer was discarded, Push reports ErrCancelled and the
// endpoint is consumed.
func (e *Endpoint[T]) Push(value T) (stored bool, err error) {
	c := e.use()
	c.μ.Lock()
	defer c.μ.Unlock()
	switch c.state {
	case stateUnset:
		c.state, c.value = stateSet, value
		e.spent.Store(true)
		return true, nil
	case stateSet:
		// The peer's value is still pending; leave it in place.
		return false, nil
	default:
		e.spent.Store(true)
		return false, ErrCancelled
	}
}

// Pull attempts to retrieve a value deposited by the peer. Pull does not
// block.
//
// If a value is stored, Pull takes it, consumes the endpoint, and reports
// ok true. If no value is stored yet, Pull reports ok false with a nil
// error and the endpoint remains live for a later attempt. If the peer was
// discarded, Pull reports ErrCancelled and the endpoint is consumed.
func (e *Endpoint[T]) Pull() (value T, ok bool, err error) {
	c := e.use()
	c.μ.Lock()
	defer c.μ.Unlock()
	switch c.state {
	case stateUnset:
		return value, false, nil
	case stateSet:
		value = c.value
		c.state = stateUnset
		c.release()
		e.spent.Store(true)
		return value, true, nil
	default:
		e.spent.Store(true)
		return value, false, ErrCancelled
	}
}

// IsSet reports whether a value is currently stored in the channel, or
// ErrCancelled if the peer was discarded. IsSet does not take the value and
// does not consume the endpoint.
func (e *Endpoint[T]) IsSet() (bool, error) {
	c := e.use()
	c.μ.Lock()
	defer c.μ.Unlock()
	switch c.state {
	case stateUnset:
		return false, nil
	case stateSet:
		return true, nil
	default:
		return false, ErrCancelled
	}
}

// Take retrieves the stored value "now or never", consuming the endpoint.
// If a value is stored, Take returns it with ok true; otherwise the channel
// is cancelled for the peer and Take reports ok false.
//
// Take returns the value without touching its contents, so a caller whose
// payload type contains further endpoints can unwrap a chain of channels in
// a loop rather than recursively. Use Discard when the value, if any, is
// not wanted.
func (e *Endpoint[T]) Take() (value T, ok bool) {
	c := e.use()
	c.μ.Lock()
	defer c.μ.Unlock()
	e.spent.Store(true)
	if c.state == stateSet {
		value, ok = c.value, true
		c.release()
	}
	c.state = stateCancelled
	return value, ok
}

// Discard consumes the endpoint without completing an exchange. If the peer
// has not yet deposited a value, the channel becomes cancelled and every
// later operation on the peer reports ErrCancelled. If the peer already
// deposited a value, that value is dropped.
func (e *Endpoint[T]) Discard() { e.Take() }
