package model

import "fmt"

// NewMap validates a fully-populated Map and builds its road index. Callers
// (package maploader) construct the Map fields from JSON first, then call
// NewMap to get a ready-to-serve, immutable value.
func NewMap(m Map) (*Map, error) {
	if err := validateMap(&m); err != nil {
		return nil, err
	}
	m.index = BuildRoadIndex(m.Roads)
	return &m, nil
}

func validateMap(m *Map) error {
	if m.ID == "" {
		return fmt.Errorf("map validation: id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("map validation: name is required for map %q", m.ID)
	}
	if len(m.Roads) == 0 {
		return fmt.Errorf("map validation: map %q must have at least one road", m.ID)
	}
	for i, r := range m.Roads {
		if !r.IsHorizontal() && !r.IsVertical() {
			return fmt.Errorf("map validation: road %d of map %q is neither horizontal nor vertical", i, m.ID)
		}
	}
	if m.DogSpeed <= 0 {
		return fmt.Errorf("map validation: map %q dog_speed must be positive, got %v", m.ID, m.DogSpeed)
	}
	if m.BagCapacity <= 0 {
		return fmt.Errorf("map validation: map %q bag_capacity must be positive, got %d", m.ID, m.BagCapacity)
	}
	if len(m.LootTypes) == 0 {
		return fmt.Errorf("map validation: map %q must declare at least one loot type", m.ID)
	}
	for i, lt := range m.LootTypes {
		if lt.Value < 0 {
			return fmt.Errorf("map validation: loot type %d of map %q has negative value %d", i, m.ID, lt.Value)
		}
	}
	seenOffice := make(map[string]bool, len(m.Offices))
	for _, o := range m.Offices {
		if o.ID == "" {
			return fmt.Errorf("map validation: office with empty id on map %q", m.ID)
		}
		if seenOffice[o.ID] {
			return fmt.Errorf("map validation: duplicate office id %q on map %q", o.ID, m.ID)
		}
		seenOffice[o.ID] = true
	}
	return nil
}

// CanonicalStart returns the map's default spawn point: the start point of
// its first road.
func (m *Map) CanonicalStart() Point {
	return m.Roads[0].Start
}
