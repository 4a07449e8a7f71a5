package gamesession

import (
	"github.com/avito-tech/dogwalk-server/internal/loot"
	"github.com/avito-tech/dogwalk-server/internal/model"
	"github.com/avito-tech/dogwalk-server/internal/motion"
)

// playerMove records one avatar's displacement during a tick, for the
// interaction pass in phase 3.
type playerMove struct {
	playerID int
	from, to model.Point
}

// Tick advances the session by dt seconds and returns the players retired
// this tick (spec §4.3):
//
//  1. spawn loot in proportion to (looters - existing loot)
//  2. move every avatar along its current direction, clamped to the roads
//  3. collect gather/deposit events along each avatar's travelled segment
//  4. sort events by (time, player id, kind, loot id)
//  5. apply events in that order
//  6. sweep players whose idle time has reached the retirement threshold
func (s *Session) Tick(dt float64) []RetiredPlayer {
	s.spawnLoot(dt)
	moves := s.moveAvatars(dt)

	offices := s.gameMap.Offices
	events := collectEvents(moves, s.LootItems(), offices)
	s.applyEvents(events)

	return s.retire()
}

func (s *Session) spawnLoot(dt float64) {
	n := s.lootGen.CountToSpawn(dt, len(s.loot), len(s.players), s.random)
	if n == 0 {
		return
	}
	items := loot.Spawn(n, s.gameMap.Roads, len(s.gameMap.LootTypes), s.random)
	for _, it := range items {
		id := s.nextLootID
		s.nextLootID++
		s.loot[id] = &LootInstance{ID: id, TypeIndex: it.TypeIndex, Position: it.Position}
	}
}

func (s *Session) moveAvatars(dt float64) []playerMove {
	idx := s.gameMap.Index()
	moves := make([]playerMove, 0, len(s.players))

	for _, p := range s.players {
		from := p.Position

		state := motion.State{Position: p.Position, Speed: p.Speed, Direction: p.Direction}
		result := motion.Advance(state, idx, dt)

		p.Position = result.Position
		p.Speed = result.Speed
		if result.HitWall {
			p.Direction = motion.None
		}

		p.PlayTime += dt
		if p.Position == from {
			p.IdleTime += dt
		} else {
			p.IdleTime = 0
		}

		moves = append(moves, playerMove{playerID: p.ID, from: from, to: p.Position})
	}

	return moves
}

// retire evicts every player whose idle time has reached the retirement
// threshold, and returns their final records (spec §4.3 phase 6, §3 "an
// optional callback for 'player retired'" — redesigned here as a returned
// slice rather than a callback; see DESIGN.md).
func (s *Session) retire() []RetiredPlayer {
	if s.retirementThreshold <= 0 {
		return nil
	}

	var retired []RetiredPlayer
	for token, p := range s.players {
		if p.IdleTime < s.retirementThreshold {
			continue
		}
		retired = append(retired, RetiredPlayer{
			Token:    token,
			Name:     p.Name,
			Score:    p.Score,
			PlayTime: p.PlayTime,
		})
		delete(s.players, token)
		delete(s.byID, p.ID)
	}
	return retired
}
