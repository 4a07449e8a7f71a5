// Package gamesession implements the per-map session container: the
// players and loot of a single map, the tick algorithm that moves avatars,
// spawns loot and resolves gather/deposit interactions, and the idle
// retirement sweep (spec §3 Session, §4.3).
//
// A Session has no internal locking. Every mutating method is expected to
// be called from a single serialized strand (package strand); that is the
// sole synchronization primitive the core relies on (spec §5).
package gamesession
