package pinger

import "context"

// Pinger is the interface components implement to report liveness.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}
