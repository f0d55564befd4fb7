// Package delivery defines the contract every transport-level server
// (HTTP today, anything else later) must satisfy so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running server owned by the fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
