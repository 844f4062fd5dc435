package handshake_test

import (
	"fmt"

	"github.com/creachadair/handshake"
)

func Example() {
	u, v := handshake.New[string]()
	combine := func(first, second string) string { return first + " " + second + "!" }

	// The two endpoints are interchangeable: each task calls Join with its
	// own contribution, and whichever call arrives second receives the
	// combined result. Here the calls are sequential, so u arrives first.
	if _, done, _ := handshake.Join(u, "Handle Communication", combine); !done {
		fmt.Println("first arrival, peer will combine")
	}
	if s, done, _ := handshake.Join(v, "Symmetrically", combine); done {
		fmt.Println(s)
	}

	// Output:
	// first arrival, peer will combine
	// Handle Communication Symmetrically!
}

func ExampleEndpoint_Push() {
	u, v := handshake.New[int]()

	// A push claims the slot, and the peer retrieves the value.
	if stored, _ := u.Push(3); stored {
		fmt.Println("stored")
	}
	n, ok, _ := v.Pull()
	fmt.Println(n, ok)

	// Output:
	// stored
	// 3 true
}

func ExampleEndpoint_Discard() {
	u, v := handshake.New[int]()

	// Discarding an endpoint that never communicated cancels the channel
	// for its peer.
	u.Discard()
	if _, _, err := v.Pull(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// handshake channel is cancelled
}
