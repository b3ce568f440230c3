package dto

import "github.com/route-recorder/internal/domain"

// RouteView is the API shape of a route.
type RouteView struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Color         string            `json:"color"`
	Description   string            `json:"description"`
	Waypoints     []domain.Waypoint `json:"waypoints"`
	WaypointCount int               `json:"waypoint_count"`
}

// RecorderStateResponse is everything the viewer needs to render the recorder:
// the toggle state, the in-progress route, and the selection pointer.
type RecorderStateResponse struct {
	Recording  bool      `json:"recording"`
	Current    RouteView `json:"current"`
	SelectedID *int64    `json:"selected_id,omitempty"`
}

// AddWaypointResponse reports whether a click was captured. Clicks while idle
// are accepted by the API but ignored by the recorder.
type AddWaypointResponse struct {
	Accepted      bool `json:"accepted"`
	WaypointCount int  `json:"waypoint_count"`
}

// SaveRouteResponse returns the route that joined the saved collection and the
// fresh in-progress route that replaced it.
type SaveRouteResponse struct {
	Saved RouteView `json:"saved"`
	Next  RouteView `json:"next"`
}

// RouteListResponse is the saved collection in insertion order.
type RouteListResponse struct {
	Routes []RouteView `json:"routes"`
}

// DeleteRouteResponse reports whether a route was actually removed. A missing
// id is not an error.
type DeleteRouteResponse struct {
	Deleted bool `json:"deleted"`
}

// SelectionResponse is the current selection pointer.
type SelectionResponse struct {
	SelectedID *int64 `json:"selected_id"`
}

// MapConfigResponse hands the viewer its map surface constants.
type MapConfigResponse struct {
	Center      domain.Waypoint `json:"center"`
	Zoom        int             `json:"zoom"`
	TileURL     string          `json:"tile_url"`
	Attribution string          `json:"attribution"`
	LineWeight  int             `json:"line_weight"`
}

// ConvertRoute maps a domain route to its API shape.
func ConvertRoute(r *domain.Route) RouteView {
	return RouteView{
		ID:            r.ID,
		Name:          r.Name,
		Color:         r.Color,
		Description:   r.Description,
		Waypoints:     r.Waypoints,
		WaypointCount: len(r.Waypoints),
	}
}

// ConvertRoutes maps the saved collection preserving insertion order.
func ConvertRoutes(routes []*domain.Route) []RouteView {
	out := make([]RouteView, 0, len(routes))
	for _, r := range routes {
		out = append(out, ConvertRoute(r))
	}
	return out
}
