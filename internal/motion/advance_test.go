package motion

import (
	"testing"

	"github.com/avito-tech/dogwalk-server/internal/model"
)

func straightRoadIndex(t *testing.T) *model.RoadIndex {
	t.Helper()
	roads := []model.Road{
		{Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 10, Y: 0}},
	}
	return model.BuildRoadIndex(roads)
}

// Scenario 1 from spec §8: map speed 3.0, road (0,0)-(10,0), avatar at
// (9,0) heading east, tick of 1s clamps to (10.4,0) with speed zeroed.
func TestAdvance_ClampToRoadEnd(t *testing.T) {
	idx := straightRoadIndex(t)
	state := State{
		Position:  model.Point{X: 9.0, Y: 0},
		Speed:     VectorFor(East, 3.0),
		Direction: East,
	}

	result := Advance(state, idx, 1.0)

	if result.Position.X != 10.4 || result.Position.Y != 0 {
		t.Errorf("expected position (10.4,0), got (%v,%v)", result.Position.X, result.Position.Y)
	}
	if result.Speed != (Vector{}) {
		t.Errorf("expected speed to be zeroed after hitting wall, got %+v", result.Speed)
	}
	if !result.HitWall {
		t.Error("expected HitWall to be true")
	}
}

func TestAdvance_FreeMovementWithinRoad(t *testing.T) {
	idx := straightRoadIndex(t)
	state := State{
		Position:  model.Point{X: 0, Y: 0},
		Speed:     VectorFor(East, 3.0),
		Direction: East,
	}

	result := Advance(state, idx, 1.0)

	if result.Position.X != 3.0 || result.Position.Y != 0 {
		t.Errorf("expected position (3,0), got (%v,%v)", result.Position.X, result.Position.Y)
	}
	if result.HitWall {
		t.Error("expected no wall hit mid-road")
	}
	if result.Speed == (Vector{}) {
		t.Error("expected speed to remain unchanged")
	}
}

func TestAdvance_NoMotionWhenDirectionNone(t *testing.T) {
	idx := straightRoadIndex(t)
	state := State{Position: model.Point{X: 5, Y: 0}, Direction: None}

	result := Advance(state, idx, 1.0)

	if result.Position != state.Position {
		t.Errorf("expected no movement, got %+v", result.Position)
	}
}

func TestAdvance_JunctionTurnFollowsVerticalRoad(t *testing.T) {
	// A vertical road crosses the horizontal one at x=10; moving further
	// east from (10,0) (i.e. off the horizontal road's end, already
	// clamped) is out of scope here — this test instead checks that an
	// avatar standing exactly at a junction moving south (off the
	// horizontal road) is bounded by the vertical road, not the
	// horizontal one.
	roads := []model.Road{
		{Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 10, Y: 0}},
		{Start: model.Point{X: 10, Y: 0}, End: model.Point{X: 10, Y: 10}},
	}
	idx := model.BuildRoadIndex(roads)

	state := State{
		Position:  model.Point{X: 10, Y: 0},
		Speed:     VectorFor(South, 3.0),
		Direction: South,
	}

	result := Advance(state, idx, 1.0)

	if result.Position.Y != 3.0 {
		t.Errorf("expected free travel down the vertical road, got y=%v", result.Position.Y)
	}
}

func TestDirectionFromCode(t *testing.T) {
	cases := map[string]Direction{"U": North, "D": South, "L": West, "R": East, "": None}
	for code, want := range cases {
		got, err := DirectionFromCode(code)
		if err != nil {
			t.Fatalf("unexpected error for code %q: %v", code, err)
		}
		if got != want {
			t.Errorf("DirectionFromCode(%q) = %v, want %v", code, got, want)
		}
	}

	if _, err := DirectionFromCode("X"); err == nil {
		t.Error("expected error for invalid move code")
	}
}
