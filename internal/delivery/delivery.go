// Package delivery defines the contract shared by the process's inbound transports.
package delivery

import "context"

// Delivery is a transport that serves until the process stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
