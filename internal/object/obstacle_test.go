package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/spacegarbage/internal/audio"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// scripted replays a fixed sequence of controls, then reports no keys.
type scripted struct {
	queue []input.Controls
}

func (s *scripted) Poll() input.Controls {
	if len(s.queue) == 0 {
		return input.Controls{}
	}
	c := s.queue[0]
	s.queue = s.queue[1:]
	return c
}

func repeat(c input.Controls, n int) *scripted {
	s := &scripted{}
	for i := 0; i < n; i++ {
		s.queue = append(s.queue, c)
	}
	return s
}

func testStore() *frame.Store {
	return &frame.Store{
		Rocket:    [2]frame.Frame{frame.Parse(" ^ \n/#\\"), frame.Parse(" ^ \n/*\\")},
		Garbage:   []frame.Frame{frame.Parse("##\n##")},
		Explosion: []frame.Frame{frame.Parse("*"), frame.Parse("#")},
		GameOver:  frame.Parse("GAME OVER"),
	}
}

func newTestWorld(height, width int, src input.Source) (*World, *draw.Grid) {
	g := draw.NewGrid(height, width)
	if src == nil {
		src = &scripted{}
	}
	w := NewWorld(g, src, audio.Bell{Surface: g}, testStore(), rand.New(rand.NewSource(1)))
	return w, g
}

// tick steps every task once and appends what they spawned, like one
// scheduler pass without the flush.
func tick(t *testing.T, w *World, tasks []Task) []Task {
	t.Helper()
	kept := tasks[:0]
	for _, task := range tasks {
		done, err := task.Step(w)
		if err != nil {
			t.Fatalf("Unexpected step error: %v", err)
		}
		if !done {
			kept = append(kept, task)
		}
	}
	return append(kept, w.TakeSpawned()...)
}

func TestRegistryAddRemove(t *testing.T) {
	r := NewRegistry()
	a := &Obstacle{Row: 1, Column: 1, Height: 2, Width: 2}
	b := &Obstacle{Row: 5, Column: 5, Height: 1, Width: 1}

	r.Add(a)
	r.Add(a)
	r.Add(b)
	if r.Len() != 2 {
		t.Fatalf("Expected 2 obstacles after duplicate add, got %d", r.Len())
	}

	r.Remove(a)
	if r.Has(a) || !r.Has(b) {
		t.Errorf("Expected only b registered, got has(a)=%v has(b)=%v", r.Has(a), r.Has(b))
	}

	// Removing an unknown obstacle is harmless
	r.Remove(a)
	if r.Len() != 1 {
		t.Errorf("Expected 1 obstacle, got %d", r.Len())
	}
}

func TestRegistryRemoveDuringScan(t *testing.T) {
	r := NewRegistry()
	obstacles := []*Obstacle{{Row: 0}, {Row: 1}, {Row: 2}}
	for _, o := range obstacles {
		r.Add(o)
	}

	seen := 0
	for _, o := range r.Obstacles() {
		r.Remove(o)
		seen++
	}
	if seen != 3 {
		t.Errorf("Expected scan to visit all 3 obstacles, visited %d", seen)
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", r.Len())
	}
}

func TestRegistryCollisions(t *testing.T) {
	r := NewRegistry()
	o := &Obstacle{Row: 2.4, Column: 3, Height: 2, Width: 3}
	r.Add(o)

	if !r.Collides(physics.Box{Row: 3, Column: 5, Height: 4, Width: 4}) {
		t.Error("Expected overlapping box to collide")
	}
	if r.Collides(physics.Box{Row: 4, Column: 3, Height: 1, Width: 1}) {
		t.Error("Expected box below the obstacle not to collide")
	}
	if r.HitAt(3, 5) != o {
		t.Error("Expected HitAt to find the obstacle at its last cell")
	}
	if r.HitAt(3, 6) != nil {
		t.Error("Expected no obstacle right of the box")
	}
}

func TestRegistryHitFlags(t *testing.T) {
	r := NewRegistry()
	o := &Obstacle{Height: 1, Width: 1}

	r.MarkHit(o)
	if r.TakeHit(o) {
		t.Error("Expected hits on unregistered obstacles to be ignored")
	}

	r.Add(o)
	r.MarkHit(o)
	if !r.TakeHit(o) {
		t.Fatal("Expected hit flag to be set")
	}
	if r.TakeHit(o) {
		t.Error("Expected TakeHit to clear the flag")
	}

	r.MarkHit(o)
	r.Remove(o)
	r.Add(o)
	if r.TakeHit(o) {
		t.Error("Expected Remove to drop the pending hit")
	}
}

func TestDelay(t *testing.T) {
	w, _ := newTestWorld(5, 5, nil)
	calls := 0
	task := Delay(3, TaskFunc(func(*World) (bool, error) {
		calls++
		return true, nil
	}))

	for i := 0; i < 3; i++ {
		if done, _ := task.Step(w); done {
			t.Fatalf("Expected task asleep on step %d", i+1)
		}
	}
	if done, _ := task.Step(w); !done || calls != 1 {
		t.Errorf("Expected wrapped task to run once after the delay, done=%v calls=%d", done, calls)
	}
}

func TestSpawnedTasksWaitForNextTic(t *testing.T) {
	w, _ := newTestWorld(5, 5, nil)
	childRan := false
	child := TaskFunc(func(*World) (bool, error) {
		childRan = true
		return true, nil
	})
	parent := TaskFunc(func(w *World) (bool, error) {
		w.Spawn(child)
		return true, nil
	})

	tasks := tick(t, w, []Task{parent})
	if childRan {
		t.Fatal("Expected spawned task not to run in the tic it was spawned")
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected child queued, got %d tasks", len(tasks))
	}
	tick(t, w, tasks)
	if !childRan {
		t.Error("Expected spawned task to run on the next tic")
	}
}
