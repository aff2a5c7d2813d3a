// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a servable transport (HTTP server). Implementations block in
// Serve until the fx lifecycle stops them.
type Delivery interface {
	Serve(ctx context.Context) error
}
