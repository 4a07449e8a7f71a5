// Package maploader reads the JSON map catalog that the core treats as an
// external collaborator (spec §1, §6 "Map JSON"): a single file describing
// every map, the default dog speed/bag capacity, and the loot generator
// configuration. Grounded on the teacher's game/config.Manager — a single
// os.ReadFile + json.Unmarshal + typed sentinel error, no directory
// scanning or caching, since the catalog here is one file loaded once at
// startup rather than many named configs loaded on demand.
package maploader
