package interfaces

import "context"

// Closer abstraction of resource released on shutdown, after all servers stopped
type Closer interface {
	Disconnect(ctx context.Context) error
}
