// Package delivery defines the entry points that serve the application.
package delivery

import "context"

// Delivery is a long-running server started by the process entry point.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
