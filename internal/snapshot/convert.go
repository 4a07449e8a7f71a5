package snapshot

import (
	"github.com/avito-tech/dogwalk-server/internal/model"
	"github.com/avito-tech/dogwalk-server/internal/motion"
)

func pointValue(p pointSection) model.Point {
	return model.Point{X: p.X, Y: p.Y}
}

func vectorValue(v vectorSection) motion.Vector {
	return motion.Vector{VX: v.VX, VY: v.VY}
}

func directionValue(s string) motion.Direction {
	return motion.Direction(s)
}
