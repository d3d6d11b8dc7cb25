// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// container.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
