package model

// Location groups the entries sharing one rounded coordinate key for map
// display. Entries are sorted newest-first. The sentinel "unknown" group
// collects all entries without a coordinate; its Coordinate is nil, and
// callers that need a real point must check for that before rendering.
type Location struct {
	Coordinate *Coordinate
	ID         string
	Entries    []Entry
}

// SavedLocation is a user-named coordinate offered as a choice in the
// entry flow. Persisted as a JSON array, separate from entries.
type SavedLocation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToCoordinate returns the saved location as an entry coordinate.
func (l SavedLocation) ToCoordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}
