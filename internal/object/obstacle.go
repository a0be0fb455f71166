package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// Obstacle is a falling hazard's collision rectangle. Row is fractional;
// collisions use the rounded row, matching where the owner draws it.
type Obstacle struct {
	Row    float64
	Column int
	Height int
	Width  int
}

// Box returns the cells the obstacle currently covers.
func (o *Obstacle) Box() physics.Box {
	return physics.Box{Row: draw.Round(o.Row), Column: o.Column, Height: o.Height, Width: o.Width}
}

// Registry holds the active obstacles and the set of obstacles hit by a
// projectile since their owner last ran.
//
// Remove replaces the backing slice instead of editing it, so a scan that
// is already iterating keeps a consistent view.
type Registry struct {
	items []*Obstacle
	hits  map[*Obstacle]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{hits: make(map[*Obstacle]struct{})}
}

// Add registers o. Adding a registered obstacle is a no-op.
func (r *Registry) Add(o *Obstacle) {
	if r.Has(o) {
		return
	}
	r.items = append(r.items, o)
}

// Remove unregisters o and drops any pending hit flag for it.
func (r *Registry) Remove(o *Obstacle) {
	kept := make([]*Obstacle, 0, len(r.items))
	for _, item := range r.items {
		if item != o {
			kept = append(kept, item)
		}
	}
	r.items = kept
	delete(r.hits, o)
}

// Has reports whether o is registered.
func (r *Registry) Has(o *Obstacle) bool {
	for _, item := range r.items {
		if item == o {
			return true
		}
	}
	return false
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.items)
}

// Obstacles returns a snapshot of the registered obstacles.
func (r *Registry) Obstacles() []*Obstacle {
	return append([]*Obstacle(nil), r.items...)
}

// Collides reports whether any obstacle overlaps b.
func (r *Registry) Collides(b physics.Box) bool {
	for _, o := range r.items {
		if o.Box().Overlaps(b) {
			return true
		}
	}
	return false
}

// HitAt returns the first obstacle covering the cell, or nil.
func (r *Registry) HitAt(row, column int) *Obstacle {
	for _, o := range r.items {
		if o.Box().Contains(row, column) {
			return o
		}
	}
	return nil
}

// MarkHit flags a registered obstacle as hit.
func (r *Registry) MarkHit(o *Obstacle) {
	if r.Has(o) {
		r.hits[o] = struct{}{}
	}
}

// TakeHit reports whether o was hit and clears the flag.
func (r *Registry) TakeHit(o *Obstacle) bool {
	if _, ok := r.hits[o]; !ok {
		return false
	}
	delete(r.hits, o)
	return true
}
