package domain

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// StorageKey is the single fixed key the saved collection is persisted under.
const StorageKey = "routes:saved"

const (
	// DefaultLineWeight is the stroke weight the viewer draws polylines with.
	DefaultLineWeight = 4
)

// Waypoint is a single geographic coordinate pair recorded during route creation.
// Coordinates are stored as-is, no bounds validation.
type Waypoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Route is a named, colored, described sequence of geographic waypoints.
// Waypoint order is significant: it defines the drawn line and traversal order.
// Duplicate waypoints are permitted.
type Route struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Color       string     `json:"color"`
	Description string     `json:"description"`
	Waypoints   []Waypoint `json:"waypoints"`
}

// NewRoute creates a fresh in-progress route with the default name, an empty
// description, and a pseudo-random color fixed for the route's lifetime.
func NewRoute(id int64) *Route {
	return &Route{
		ID:        id,
		Name:      fmt.Sprintf("Route %d", id),
		Color:     randomColor(),
		Waypoints: []Waypoint{},
	}
}

// Clone returns a deep copy of the route. The waypoint slice is copied so the
// clone is not aliased by later appends to the original.
func (r *Route) Clone() *Route {
	clone := *r
	clone.Waypoints = make([]Waypoint, len(r.Waypoints))
	copy(clone.Waypoints, r.Waypoints)
	return &clone
}

// CanSave reports whether the route has enough waypoints to form a line.
func (r *Route) CanSave() bool {
	return len(r.Waypoints) >= 2
}

// randomColor picks a 6-hex-digit color code. Colors are cosmetic only and
// carry no uniqueness guarantee across routes.
func randomColor() string {
	return fmt.Sprintf("#%06X", rand.Intn(0x1000000))
}

// MarshalRoutes serializes the saved collection as an ordered JSON array for
// the persistence substrate.
func MarshalRoutes(routes []*Route) ([]byte, error) {
	data, err := json.Marshal(routes)
	if err != nil {
		return nil, fmt.Errorf("marshal routes: %w", err)
	}
	return data, nil
}

// UnmarshalRoutes deserializes a saved collection blob. Callers treat an error
// as "no saved routes"; malformed data must never be fatal.
func UnmarshalRoutes(data []byte) ([]*Route, error) {
	var routes []*Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("unmarshal routes: %w", err)
	}
	return routes, nil
}
