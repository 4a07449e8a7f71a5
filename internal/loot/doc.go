// Package loot implements the period-based loot spawner (spec §4.2): given
// an elapsed tick, the current loot count and the number of active
// players, it decides how many new loot items should appear, and where.
package loot
