// Package snapshot serializes and restores the entire registry's live
// state to a single file, for crash recovery across restarts (spec §4.6).
//
// The on-disk format follows the JSON envelope shape of the teacher's
// game/session.FilePersistence (marshal-indent, single file; a missing
// file loads as empty state rather than an error), but writes atomically: to a
// temporary file in the same directory, then rename, so a crash mid-write
// never leaves a torn file behind.
package snapshot
