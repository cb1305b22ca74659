package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

// ErrNotFound is returned when a map snapshot or seed map does not exist.
var ErrNotFound = errors.New("map not found")

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage persists per-session map snapshots and serves the static
// seed maps that sessions start from.
type Storage interface {
	HealthChecker
	Closer

	// SaveMap saves a map snapshot under its session id
	SaveMap(ctx context.Context, id uuid.UUID, data *worldmap.MapData) error

	// LoadMap retrieves a map snapshot by session id.
	// Returns ErrNotFound if it doesn't exist.
	LoadMap(ctx context.Context, id uuid.UUID) (*worldmap.MapData, error)

	// DeleteMap removes a map snapshot by session id
	DeleteMap(ctx context.Context, id uuid.UUID) error

	// ListSeedMaps lists the seed map filenames available on disk
	ListSeedMaps(ctx context.Context) ([]string, error)

	// GetSeedMap loads a seed map by filename.
	// Returns ErrNotFound if it doesn't exist.
	GetSeedMap(ctx context.Context, filename string) (*worldmap.MapData, error)
}
