// Package delivery defines the entry points of the application.
package delivery

import "context"

// Delivery is a serving surface of the application, such as an HTTP server.
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
