// Package scoreboard persists retired players' final scores to Postgres
// (spec §6 Database): a single retired_players table, written through a
// bounded database/sql connection pool and read back with LIMIT/OFFSET
// pagination for GET /api/v1/game/records.
//
// Writes never block the simulation tick: a background goroutine drains a
// buffered channel of pending inserts, the same channel-plus-single-
// goroutine shape as the teacher's transport/websocket.Hub.Run loop
// (see internal/strand's doc comment), here repurposed from broadcasting
// game state to flushing scoreboard rows.
package scoreboard
