package kittens

// EntityState is a plain copy of one entity.
type EntityState struct {
	Lane  int
	X     int
	Y     float64
	Speed float64 // Zero for tomatoes
}

// Snapshot contains the complete session state, for tests and replays.
// Enemies and tomatoes are listed in lane order.
type Snapshot struct {
	State    State
	Score    int64
	PlayerX  int
	PlayerY  float64
	Enemies  []EntityState
	Tomatoes []EntityState
}

// Snapshot returns a copy of the current session state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:   e.state,
		Score:   e.score,
		PlayerX: e.player.x,
		PlayerY: e.player.y,
	}
	e.enemies.Each(func(lane int, en *Enemy) {
		s.Enemies = append(s.Enemies, EntityState{Lane: lane, X: en.x, Y: en.y, Speed: en.speed})
	})
	e.tomatoes.Each(func(lane int, t *Tomato) {
		s.Tomatoes = append(s.Tomatoes, EntityState{Lane: lane, X: t.x, Y: t.y})
	})
	return s
}
