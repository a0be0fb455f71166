package object

import (
	"testing"

	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/scenario"
)

func TestSpaceshipStaysInsideBorder(t *testing.T) {
	moves := []input.Controls{
		{Rows: -1, Columns: -1},
		{Rows: 1, Columns: 1},
		{Rows: 1, Columns: -1},
		{Rows: -1, Columns: 1},
	}
	for _, c := range moves {
		w, _ := newTestWorld(12, 20, repeat(c, 40))
		ship := NewSpaceship(5, 8)

		for i := 0; i < 40; i++ {
			if done, err := ship.Step(w); done || err != nil {
				t.Fatalf("Unexpected finish on step %d: done=%v err=%v", i+1, done, err)
			}
			if !ship.Box(w.ShipFrame).Inside(1, 1, 10, 18) {
				t.Fatalf("Controls %+v: ship left the playfield at %+v", c, ship.Box(w.ShipFrame))
			}
		}
	}
}

func TestSpaceshipDrawsAndErases(t *testing.T) {
	w, g := newTestWorld(12, 20, &scripted{queue: []input.Controls{{}, {Columns: 1}}})
	ship := NewSpaceship(5, 5)

	ship.Step(w)
	if g.Rune(5, 6) != '^' {
		t.Fatalf("Expected ship drawn at (5,5), got:\n%s", g)
	}

	ship.Step(w)
	if g.Rune(5, 6) != ' ' {
		t.Errorf("Expected previous pose erased, got:\n%s", g)
	}
	if g.Rune(5, 7) != '^' {
		t.Errorf("Expected ship moved right by one, got:\n%s", g)
	}
}

func TestSpaceshipFireRequiresWeaponYear(t *testing.T) {
	fire := input.Controls{Fire: true}

	w, _ := newTestWorld(12, 20, repeat(fire, 1))
	w.Year = scenario.WeaponYear - 1
	NewSpaceship(5, 5).Step(w)
	if spawned := w.TakeSpawned(); len(spawned) != 0 {
		t.Fatalf("Expected no shot before %d, got %d tasks", scenario.WeaponYear, len(spawned))
	}

	w, _ = newTestWorld(12, 20, repeat(fire, 1))
	w.Year = scenario.WeaponYear
	NewSpaceship(5, 5).Step(w)
	spawned := w.TakeSpawned()
	if len(spawned) != 1 {
		t.Fatalf("Expected one shot, got %d tasks", len(spawned))
	}
	shot, ok := spawned[0].(*Fire)
	if !ok {
		t.Fatalf("Expected *Fire, got %T", spawned[0])
	}
	if shot.Row != 5 || shot.Column != 6 {
		t.Errorf("Expected shot at the muzzle (5,6), got (%v,%v)", shot.Row, shot.Column)
	}
}

func TestSpaceshipCrash(t *testing.T) {
	w, _ := newTestWorld(12, 20, nil)
	ship := NewSpaceship(5, 5)
	ship.Step(w)

	w.Obstacles.Add(&Obstacle{Row: 6, Column: 7, Height: 1, Width: 1})
	done, err := ship.Step(w)
	if err != nil || !done {
		t.Fatalf("Expected ship to finish on collision, done=%v err=%v", done, err)
	}
	spawned := w.TakeSpawned()
	if len(spawned) != 1 {
		t.Fatalf("Expected game over task, got %d tasks", len(spawned))
	}
	if _, ok := spawned[0].(*GameOver); !ok {
		t.Errorf("Expected *GameOver, got %T", spawned[0])
	}
}

func TestSpaceshipRejectsBadIntent(t *testing.T) {
	w, _ := newTestWorld(12, 20, repeat(input.Controls{Rows: 2}, 1))
	if _, err := NewSpaceship(5, 5).Step(w); err == nil {
		t.Error("Expected an error for an out-of-range intent")
	}
}
