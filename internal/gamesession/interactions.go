package gamesession

import (
	"math"
	"sort"

	"github.com/avito-tech/dogwalk-server/internal/model"
)

type eventKind int

const (
	// gatherKind sorts before depositKind at equal (t, playerID) so a
	// player can pick up and immediately deposit within the same tick
	// (spec §4.3 phase 4).
	gatherKind eventKind = iota
	depositKind
)

type interactionEvent struct {
	t        float64
	playerID int
	kind     eventKind
	lootID   int // valid for gatherKind
}

// collectEvents tests every moved player's segment (from->to) against
// every loot item and office, per spec §4.3 phase 3.
//
// The source for this phase was, in the original implementation, commented
// out (a known latent bug — see spec §9 design notes); this re-enables it.
func collectEvents(moves []playerMove, lootItems []*LootInstance, offices []model.Office) []interactionEvent {
	var events []interactionEvent

	for _, mv := range moves {
		if mv.from == mv.to {
			continue
		}
		for _, l := range lootItems {
			t, dist := closestApproach(mv.from, mv.to, l.Position)
			if dist <= model.LootCollisionRadius {
				events = append(events, interactionEvent{t: t, playerID: mv.playerID, kind: gatherKind, lootID: l.ID})
			}
		}
		for _, o := range offices {
			t, dist := closestApproach(mv.from, mv.to, o.PointValue())
			if dist <= model.OfficeCollisionRadius {
				events = append(events, interactionEvent{t: t, playerID: mv.playerID, kind: depositKind})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.t != b.t {
			return a.t < b.t
		}
		if a.playerID != b.playerID {
			return a.playerID < b.playerID
		}
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.lootID < b.lootID
	})

	return events
}

// closestApproach returns the parametric time t in [0,1] of the closest
// point on segment from->to to point, and the distance at that point.
func closestApproach(from, to, point model.Point) (t, dist float64) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		t = 0
	} else {
		t = ((point.X-from.X)*dx + (point.Y-from.Y)*dy) / lengthSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	cx := from.X + t*dx
	cy := from.Y + t*dy
	dist = math.Hypot(point.X-cx, point.Y-cy)
	return t, dist
}

// applyEvents executes gather/deposit events in order (spec §4.3 phase 5).
func (s *Session) applyEvents(events []interactionEvent) {
	for _, e := range events {
		player := s.byID[e.playerID]
		if player == nil {
			continue
		}

		switch e.kind {
		case gatherKind:
			item, ok := s.loot[e.lootID]
			if !ok {
				continue // already gathered by an earlier event this tick
			}
			if len(player.Bag) >= s.gameMap.BagCapacity {
				continue // bag full, loot stays on the map
			}
			player.Bag = append(player.Bag, BagItem{LootID: item.ID, TypeIndex: item.TypeIndex})
			delete(s.loot, e.lootID)

		case depositKind:
			if len(player.Bag) == 0 {
				continue
			}
			for _, item := range player.Bag {
				player.Score += s.gameMap.LootTypes[item.TypeIndex].Value
			}
			player.Bag = player.Bag[:0]
		}
	}
}
