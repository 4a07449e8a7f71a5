// Package registry implements the Game Registry (spec §4.4): the ordered
// map catalog, lazily-created per-map sessions, and the global token index
// that lets the HTTP layer resolve a bearer token straight to its player
// without knowing which map it belongs to.
//
// Like gamesession.Session, Game carries no internal lock. Every mutating
// method is expected to run on the single-writer strand (package strand);
// read-only methods are expected to be posted through the same strand so
// callers observe a consistent snapshot (spec §5).
package registry
