package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
)

func TestCollides(t *testing.T) {
	e := NewEgg(config.DefaultConfig().Egg, testField, core.ColorRed) // radius 20 at (200, 300)

	tests := []struct {
		name   string
		center core.Vec
		size   float64
		want   bool
	}{
		{"same center", core.Vec{X: 200, Y: 300}, 30, true},
		{"just inside", core.Vec{X: 234, Y: 300}, 30, true},
		{"touching", core.Vec{X: 235, Y: 300}, 30, false},
		{"far away", core.Vec{X: 500, Y: 100}, 80, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(&e, tc.center, tc.size); got != tc.want {
				t.Errorf("Collides() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDamageFloorsAtZero(t *testing.T) {
	r := NewRound(config.DefaultConfig(), core.ColorBlack)

	for i := 0; i < 6; i++ {
		r.Damage(time.Duration(i) * time.Second)
		if r.Health < 0 || r.Health > 100 {
			t.Fatalf("health %d out of range", r.Health)
		}
	}
	if r.Health != 0 || !r.Lost() {
		t.Errorf("health = %d, expected 0 and lost", r.Health)
	}
	if r.LastHit() != 5*time.Second {
		t.Errorf("last hit = %v, expected 5s", r.LastHit())
	}
}

func TestRegenerate(t *testing.T) {
	r := NewRound(config.DefaultConfig(), core.ColorBlack)
	r.Health = 50

	steps := []struct {
		now    time.Duration
		hit    bool
		want   bool
		health int
	}{
		{4900 * time.Millisecond, false, false, 50},
		{5 * time.Second, true, false, 50},
		{5 * time.Second, false, true, 75},
		{6 * time.Second, false, false, 75},  // window restarts from the last regen
		{10 * time.Second, false, true, 100}, // capped below
		{15 * time.Second, false, false, 100},
	}

	for i, s := range steps {
		got := r.Regenerate(s.now, s.hit)
		if got != s.want || r.Health != s.health {
			t.Errorf("step %d at %v: Regenerate() = %v health %d, expected %v health %d",
				i, s.now, got, r.Health, s.want, s.health)
		}
	}

	// Full-health regen still moves the window
	if r.LastHit() != 15*time.Second {
		t.Errorf("last hit = %v, expected 15s", r.LastHit())
	}
}

func TestCollect(t *testing.T) {
	r := NewRound(config.DefaultConfig(), core.ColorBlack)
	r.Hatch = 80

	if r.Collect() {
		t.Error("90% should not hatch")
	}
	if !r.Collect() || r.Hatch != 100 {
		t.Errorf("hatch = %d, expected 100 and hatched", r.Hatch)
	}
}
