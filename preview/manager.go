package preview

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// frameInterval paces the animation loop of mounted renderers
const frameInterval = 33 * time.Millisecond

// Manager owns the mounted preview renderers. Each mount claims its own
// renderer and animation loop; unmounting releases both before the id can
// be reused.
type Manager struct {
	mu        sync.Mutex
	modelPath string
	renderers map[string]*Renderer
	nextID    int
}

// NewManager creates a Manager that loads previews from modelPath
func NewManager(modelPath string) *Manager {
	return &Manager{
		modelPath: modelPath,
		renderers: make(map[string]*Renderer),
	}
}

// Mount creates a renderer for the given viewport, starts its asset load
// and animation loop, and returns its id.
func (m *Manager) Mount(width, height int, garmentColor string, interactive bool) (string, *Renderer) {
	renderer := NewRenderer(width, height, garmentColor, interactive)
	renderer.Load(m.modelPath)

	m.mu.Lock()
	m.nextID++
	id := "preview-" + strconv.Itoa(m.nextID)
	m.renderers[id] = renderer
	m.mu.Unlock()

	// Animation loop: steps frames until the renderer is closed
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-renderer.done:
				return
			case <-ticker.C:
				renderer.Step()
			}
		}
	}()

	return id, renderer
}

// Get returns a mounted renderer by id
func (m *Manager) Get(id string) (*Renderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	renderer, ok := m.renderers[id]
	if !ok {
		return nil, fmt.Errorf("preview %s not found", id)
	}
	return renderer, nil
}

// Unmount closes a renderer and removes it from the manager
func (m *Manager) Unmount(id string) error {
	m.mu.Lock()
	renderer, ok := m.renderers[id]
	if ok {
		delete(m.renderers, id)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("preview %s not found", id)
	}
	renderer.Close()
	return nil
}

// Shutdown unmounts every renderer. Called on process teardown.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	renderers := m.renderers
	m.renderers = make(map[string]*Renderer)
	m.mu.Unlock()

	for _, renderer := range renderers {
		renderer.Close()
	}
}
