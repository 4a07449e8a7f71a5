package gamesession

import (
	"github.com/avito-tech/dogwalk-server/internal/auth"
	"github.com/avito-tech/dogwalk-server/internal/model"
	"github.com/avito-tech/dogwalk-server/internal/motion"
)

// BagItem is one piece of loot an avatar is carrying. LootID is kept for
// traceability in snapshots and logs; scoring only needs TypeIndex.
type BagItem struct {
	LootID    int
	TypeIndex int
}

// Player is one avatar: its identity, physical state, bag, score and the
// timers that drive idle retirement (spec §3 Avatar/Dog).
type Player struct {
	ID        int
	Token     auth.Token
	Name      string
	Position  model.Point
	Speed     motion.Vector
	Direction motion.Direction
	Bag       []BagItem
	Score     int
	PlayTime  float64 // seconds
	IdleTime  float64 // seconds, reset whenever the avatar actually moves
}

// LootInstance is a single spawned loot item on the map.
type LootInstance struct {
	ID        int
	TypeIndex int
	Position  model.Point
}

// RetiredPlayer is the record handed to the registry when a player is
// evicted for idling past the retirement threshold (spec §4.3 phase 6).
type RetiredPlayer struct {
	Token    auth.Token
	Name     string
	Score    int
	PlayTime float64
}
