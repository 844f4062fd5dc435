package handshake

// Join deposits value if the channel is empty, or retrieves the peer's
// value and combines the two. Join always consumes the endpoint and never
// blocks.
//
// If no value is stored yet, value is deposited for the peer and Join
// reports done false with a zero result: this call arrived first, and the
// peer's Join will perform the combination. If the peer has already
// deposited a value, Join reports done true with the result of
// f(earlier, later), where earlier is the peer's value: whichever value
// reached the channel first is always the first argument, regardless of
// scheduling. If the peer was discarded, Join reports ErrCancelled.
//
// The combiner runs after the channel has been finalized and the lock
// released, so a panic in f cannot corrupt the channel state.
//
// Join is a function rather than a method so the combiner may produce a
// result type other than T. An endpoint whose caller only needs to send or
// receive should use Push or Pull instead.
func Join[T, U any](e *Endpoint[T], value T, f func(first, second T) U) (result U, done bool, err error) {
	c := e.use()
	c.μ.Lock()
	e.spent.Store(true)
	switch c.state {
	case stateUnset:
		c.state, c.value = stateSet, value
		c.μ.Unlock()
		return result, false, nil
	case stateSet:
		other := c.value
		c.state = stateUnset
		c.release()
		c.μ.Unlock()
		return f(other, value), true, nil
	default:
		c.μ.Unlock()
		return result, false, ErrCancelled
	}
}
