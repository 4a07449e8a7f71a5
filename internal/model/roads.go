package model

import "math"

// RoadIndex groups a map's roads by the coordinate a perpendicular avatar
// snaps to: horizontal roads keyed by their (rounded) Y, vertical roads
// keyed by their (rounded) X. This mirrors the road lookup the motion
// engine needs every tick, built once instead of scanned per avatar.
type RoadIndex struct {
	ByY map[int][]*Road
	ByX map[int][]*Road
}

// BuildRoadIndex groups roads by axis for O(1) junction lookup.
func BuildRoadIndex(roads []Road) *RoadIndex {
	idx := &RoadIndex{
		ByY: make(map[int][]*Road),
		ByX: make(map[int][]*Road),
	}
	for i := range roads {
		r := &roads[i]
		if r.IsHorizontal() {
			y := int(math.Round(r.Start.Y))
			idx.ByY[y] = append(idx.ByY[y], r)
		}
		if r.IsVertical() {
			x := int(math.Round(r.Start.X))
			idx.ByX[x] = append(idx.ByX[x], r)
		}
	}
	return idx
}

// HorizontalAt returns the horizontal road (if any) whose axis passes
// through rounded Y, and whose X span contains x within RoadHalfWidth.
func (idx *RoadIndex) HorizontalAt(x, y float64) (*Road, bool) {
	roundedY := int(math.Round(y))
	for _, r := range idx.ByY[roundedY] {
		if x >= r.MinX()-RoadHalfWidth && x <= r.MaxX()+RoadHalfWidth {
			return r, true
		}
	}
	return nil, false
}

// VerticalAt returns the vertical road (if any) whose axis passes through
// rounded X, and whose Y span contains y within RoadHalfWidth.
func (idx *RoadIndex) VerticalAt(x, y float64) (*Road, bool) {
	roundedX := int(math.Round(x))
	for _, r := range idx.ByX[roundedX] {
		if y >= r.MinY()-RoadHalfWidth && y <= r.MaxY()+RoadHalfWidth {
			return r, true
		}
	}
	return nil, false
}

// AnyHorizontal reports whether a horizontal road exists at rounded Y,
// regardless of X span.
func (idx *RoadIndex) AnyHorizontal(y float64) bool {
	_, ok := idx.ByY[int(math.Round(y))]
	return ok
}

// AnyVertical reports whether a vertical road exists at rounded X.
func (idx *RoadIndex) AnyVertical(x float64) bool {
	_, ok := idx.ByX[int(math.Round(x))]
	return ok
}

// RandomRoadPoint returns a uniformly sampled point on a uniformly chosen
// road's interior, using the supplied source of randomness in [0,1).
func RandomRoadPoint(roads []Road, f64 func() float64) Point {
	r := roads[int(f64()*float64(len(roads)))%len(roads)]
	if r.IsHorizontal() {
		x := r.MinX() + f64()*(r.MaxX()-r.MinX())
		return Point{X: x, Y: r.Start.Y}
	}
	y := r.MinY() + f64()*(r.MaxY()-r.MinY())
	return Point{X: r.Start.X, Y: y}
}
