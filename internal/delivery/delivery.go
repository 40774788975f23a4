// Package delivery defines the contract shared by the inbound adapters.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as the HTTP API.
type Delivery interface {
	// Serve blocks until the adapter stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
