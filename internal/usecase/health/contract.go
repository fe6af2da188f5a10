package health

import "context"

// DBPinger checks document store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// StoragePinger checks object storage availability.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

// BreakerProbe reports whether the store circuit breaker is open.
type BreakerProbe interface {
	Open() bool
}
