package gamesession

import (
	"errors"

	"github.com/avito-tech/dogwalk-server/internal/auth"
	"github.com/avito-tech/dogwalk-server/internal/loot"
	"github.com/avito-tech/dogwalk-server/internal/model"
	"github.com/avito-tech/dogwalk-server/internal/motion"
)

// ErrInvalidName is returned by Join when the requested player name is empty.
var ErrInvalidName = errors.New("gamesession: player name must not be empty")

// Session owns the players and loot of a single map. See the package doc
// for the concurrency contract.
type Session struct {
	gameMap *model.Map

	players map[auth.Token]*Player
	byID    map[int]*Player
	loot    map[int]*LootInstance

	nextLootID   int
	nextPlayerID int

	lootGen             loot.Config
	randomSpawn         bool
	retirementThreshold float64 // seconds

	random func() float64 // uniform [0,1); injectable for deterministic tests
}

// Config bundles the knobs a Session needs beyond its map, so registry can
// construct sessions uniformly for every map in the catalog.
type Config struct {
	LootGenerator       loot.Config
	RandomSpawn         bool
	RetirementThreshold float64
	Random              func() float64
}

// New creates an empty session for m.
func New(m *model.Map, cfg Config) *Session {
	random := cfg.Random
	if random == nil {
		random = defaultRandom
	}
	return &Session{
		gameMap:             m,
		players:             make(map[auth.Token]*Player),
		byID:                make(map[int]*Player),
		loot:                make(map[int]*LootInstance),
		lootGen:             cfg.LootGenerator,
		randomSpawn:         cfg.RandomSpawn,
		retirementThreshold: cfg.RetirementThreshold,
		random:              random,
	}
}

// Map returns the session's static world.
func (s *Session) Map() *model.Map { return s.gameMap }

// Join creates a new player with the given token and name and places it at
// the map's canonical start, or a random road point when random spawn is
// enabled.
func (s *Session) Join(token auth.Token, name string) (*Player, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	id := s.nextPlayerID
	s.nextPlayerID++

	pos := s.gameMap.CanonicalStart()
	if s.randomSpawn {
		pos = model.RandomRoadPoint(s.gameMap.Roads, s.random)
	}

	p := &Player{
		ID:        id,
		Token:     token,
		Name:      name,
		Position:  pos,
		Direction: motion.None,
	}

	s.players[token] = p
	s.byID[id] = p
	return p, nil
}

// Get returns the player owning token, if any.
func (s *Session) Get(token auth.Token) (*Player, bool) {
	p, ok := s.players[token]
	return p, ok
}

// Players returns every player currently in the session. Order is
// unspecified (spec §3: "insertion-ordered results are not required").
func (s *Session) Players() []*Player {
	out := make([]*Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	return out
}

// LootItems returns every loot instance currently on the map.
func (s *Session) LootItems() []*LootInstance {
	out := make([]*LootInstance, 0, len(s.loot))
	for _, l := range s.loot {
		out = append(out, l)
	}
	return out
}

// NextLootID and NextPlayerID expose the session's id counters for
// snapshotting.
func (s *Session) NextLootID() int   { return s.nextLootID }
func (s *Session) NextPlayerID() int { return s.nextPlayerID }

// SetDirection applies a move command: it sets the avatar's direction and
// derives its speed from the map's dog speed (spec §4.5 direction decoding).
func (s *Session) SetDirection(token auth.Token, dir motion.Direction) (*Player, bool) {
	p, ok := s.players[token]
	if !ok {
		return nil, false
	}
	p.Direction = dir
	p.Speed = motion.VectorFor(dir, s.gameMap.DogSpeed)
	return p, true
}

func defaultRandom() float64 { return pseudoRandomSource.Float64() }
