package device

import (
	"sync"

	"golang.org/x/exp/slices"
)

// LightGroup is the light collection shared by the security and detection systems.
// Systems borrow it and only read snapshots; membership changes go through Add.
type LightGroup struct {
	mu     sync.RWMutex
	lights []Light
}

// NewLightGroup creates a group holding the given lights.
func NewLightGroup(lights ...Light) *LightGroup {
	return &LightGroup{
		lights: slices.Clone(lights),
	}
}

// Add appends a light to the group.
func (g *LightGroup) Add(l Light) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lights = append(g.lights, l)
}

// Lights returns a snapshot of the members. A nil group has none.
func (g *LightGroup) Lights() []Light {
	if g == nil {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.lights)
}

// Len returns the number of members.
func (g *LightGroup) Len() int {
	if g == nil {
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.lights)
}
