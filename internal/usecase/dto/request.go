package dto

// AddWaypointRequest carries a map click. Coordinates are recorded as-is:
// the recorder does no bounds validation on waypoints.
type AddWaypointRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// UpdateRouteInfoRequest edits the in-progress route's metadata. Empty values
// are valid: a route may keep its default name and an empty description.
type UpdateRouteInfoRequest struct {
	Field string `json:"field" validate:"required,oneof=name description"`
	Value string `json:"value"`
}
