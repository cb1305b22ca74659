package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	maps      map[uuid.UUID]*worldmap.MapData
	seedMaps  map[string]*worldmap.MapData
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		maps:     make(map[uuid.UUID]*worldmap.MapData),
		seedMaps: make(map[string]*worldmap.MapData),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// AddSeedMap registers a seed map under a filename
func (m *MockStorage) AddSeedMap(filename string, data *worldmap.MapData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seedMaps[filename] = data
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SaveMap(ctx context.Context, id uuid.UUID, data *worldmap.MapData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maps[id] = data
	return nil
}

func (m *MockStorage) LoadMap(ctx context.Context, id uuid.UUID) (*worldmap.MapData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.maps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m *MockStorage) DeleteMap(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.maps, id)
	return nil
}

func (m *MockStorage) ListSeedMaps(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.seedMaps))
	for name := range m.seedMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockStorage) GetSeedMap(ctx context.Context, filename string) (*worldmap.MapData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.seedMaps[filename]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}
