package gamesession

import (
	"math/rand"
	"sync"
	"time"
)

// pseudoRandomSource backs the package-level default random function used
// when a Session is not given an explicit one (production wiring always
// supplies its own via Config.Random; this default only matters for
// ad-hoc construction in tests and tools).
var pseudoRandomSource = newLockedRand()

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand() *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}
