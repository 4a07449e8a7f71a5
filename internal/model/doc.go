// Package model holds the static, immutable description of a game world:
// maps, their road networks, offices, buildings and loot types. Nothing in
// this package mutates after a Map is built; runtime state (avatars, loot
// instances, scores) lives in package gamesession.
package model
