package motion

import "github.com/avito-tech/dogwalk-server/internal/model"

// Result is the outcome of a single Advance call.
type Result struct {
	Position model.Point
	Speed    Vector
	HitWall  bool
}

// Advance computes an avatar's new position after dt seconds, clamped to
// the road graph reachable from its current position (spec §4.1).
//
// An avatar with direction None or zero speed never moves; idle-time
// accounting is the caller's responsibility (package gamesession), not
// this function's.
func Advance(state State, idx *model.RoadIndex, dt float64) Result {
	if state.Direction == None || (state.Speed == Vector{}) || dt <= 0 {
		return Result{Position: state.Position, Speed: state.Speed}
	}

	switch state.Direction {
	case East, West:
		return advanceHorizontal(state, idx, dt)
	case North, South:
		return advanceVertical(state, idx, dt)
	default:
		return Result{Position: state.Position, Speed: state.Speed}
	}
}

func advanceHorizontal(state State, idx *model.RoadIndex, dt float64) Result {
	pos := state.Position
	var lowX, highX, snappedY float64
	snappedY = pos.Y

	if road, ok := selectHorizontal(idx, pos); ok {
		lowX = road.MinX() - model.RoadHalfWidth
		highX = road.MaxX() + model.RoadHalfWidth
		snappedY = road.Start.Y
	} else {
		// Leaving a vertical road eastward/westward: bounded to the
		// junction's half-width, not to any road's endpoints.
		lowX = pos.X - model.RoadHalfWidth
		highX = pos.X + model.RoadHalfWidth
	}

	proposedX := pos.X + state.Speed.VX*dt
	clampedX, hit := clamp(proposedX, lowX, highX)

	return Result{
		Position: model.Point{X: clampedX, Y: snappedY},
		Speed:    zeroIfHit(state.Speed, hit),
		HitWall:  hit,
	}
}

func advanceVertical(state State, idx *model.RoadIndex, dt float64) Result {
	pos := state.Position
	var lowY, highY, snappedX float64
	snappedX = pos.X

	if road, ok := selectVertical(idx, pos); ok {
		lowY = road.MinY() - model.RoadHalfWidth
		highY = road.MaxY() + model.RoadHalfWidth
		snappedX = road.Start.X
	} else {
		lowY = pos.Y - model.RoadHalfWidth
		highY = pos.Y + model.RoadHalfWidth
	}

	proposedY := pos.Y + state.Speed.VY*dt
	clampedY, hit := clamp(proposedY, lowY, highY)

	return Result{
		Position: model.Point{X: snappedX, Y: clampedY},
		Speed:    zeroIfHit(state.Speed, hit),
		HitWall:  hit,
	}
}

// selectHorizontal returns the horizontal road at the avatar's rounded Y
// whose span covers its current X within RoadHalfWidth (the tie-break
// parallel road). It reports false when no such road exists; there is no
// fallback to another road at that Y, and the caller then bounds movement
// to the junction's half-width.
func selectHorizontal(idx *model.RoadIndex, pos model.Point) (*model.Road, bool) {
	if r, ok := idx.HorizontalAt(pos.X, pos.Y); ok {
		return r, true
	}
	return nil, false
}

func selectVertical(idx *model.RoadIndex, pos model.Point) (*model.Road, bool) {
	if r, ok := idx.VerticalAt(pos.X, pos.Y); ok {
		return r, true
	}
	return nil, false
}

func clamp(v, lo, hi float64) (clamped float64, hit bool) {
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, false
}

func zeroIfHit(speed Vector, hit bool) Vector {
	if hit {
		return Vector{}
	}
	return speed
}
