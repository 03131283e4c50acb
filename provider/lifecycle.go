package provider

import "context"

// Closeable is optionally implemented by providers that hold resources
// (idle connections, helper processes). Manager.Close calls it on shutdown.
type Closeable interface {
	Close(ctx context.Context) error
}
