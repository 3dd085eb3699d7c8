// Package delivery defines the contract for inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound server managed by the application
// lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
