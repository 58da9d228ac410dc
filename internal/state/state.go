// Package state provides thread-safe session state for the application.
package state

import (
	"image"
	"sync"
	"time"

	"github.com/litescript/ls-atlas/internal/catalog"
)

// Snapshot is an immutable view of the session state.
type Snapshot struct {
	Bodies        []catalog.Body
	LastFetch     time.Time
	FetchDuration time.Duration
}

// Manager holds the fetched catalog and a cache of synthesized textures.
// All methods are safe for concurrent use; the cached buffers themselves are
// treated as read-only once stored.
type Manager struct {
	mu sync.RWMutex

	bodies        []catalog.Body
	lastFetch     time.Time
	fetchDuration time.Duration

	// Synthesized textures keyed by body ID. Re-selecting a body must not
	// re-run the pixel loop.
	textures map[string]*image.RGBA
}

// NewManager creates an empty state manager.
func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]*image.RGBA),
	}
}

// SetCatalog stores a fetched body list. An empty list is a valid state
// meaning "no data available".
func (m *Manager) SetCatalog(bodies []catalog.Body, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bodies = bodies
	m.lastFetch = time.Now()
	m.fetchDuration = duration
}

// Snapshot returns a point-in-time view of the catalog state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Bodies:        m.bodies,
		LastFetch:     m.lastFetch,
		FetchDuration: m.fetchDuration,
	}
}

// Texture returns the cached texture for a body ID, if present.
func (m *Manager) Texture(id string) (*image.RGBA, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.textures[id]
	return img, ok
}

// StoreTexture caches a synthesized texture for a body ID.
func (m *Manager) StoreTexture(id string, img *image.RGBA) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textures[id] = img
}
