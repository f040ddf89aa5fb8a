// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a transport surface (HTTP today) that serves until its
// lifecycle hook shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
