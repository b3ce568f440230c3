package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	colorRe := regexp.MustCompile(`^#[0-9A-F]{6}$`)

	route := NewRoute(5)
	assert.Equal(t, int64(5), route.ID)
	assert.Equal(t, "Route 5", route.Name)
	assert.Empty(t, route.Description)
	assert.Empty(t, route.Waypoints)
	assert.Regexp(t, colorRe, route.Color)
}

func TestRoute_Clone(t *testing.T) {
	route := NewRoute(1)
	route.Waypoints = append(route.Waypoints, Waypoint{Lat: 47.90, Lon: -91.80})

	clone := route.Clone()
	assert.Equal(t, route, clone)

	route.Waypoints = append(route.Waypoints, Waypoint{Lat: 47.91, Lon: -91.81})
	assert.Len(t, clone.Waypoints, 1, "clone must not share the waypoint slice")
}

func TestRoute_CanSave(t *testing.T) {
	route := NewRoute(1)
	assert.False(t, route.CanSave())

	route.Waypoints = append(route.Waypoints, Waypoint{Lat: 47.90, Lon: -91.80})
	assert.False(t, route.CanSave())

	route.Waypoints = append(route.Waypoints, Waypoint{Lat: 47.91, Lon: -91.81})
	assert.True(t, route.CanSave())
}

func TestMarshalRoutes_RoundTrip(t *testing.T) {
	routes := []*Route{
		{
			ID:          1,
			Name:        "Route 1",
			Color:       "#3D9970",
			Description: "along the shoreline",
			Waypoints: []Waypoint{
				{Lat: 47.90, Lon: -91.80},
				{Lat: 47.91, Lon: -91.81},
			},
		},
		{
			ID:        4,
			Name:      "Route 4",
			Color:     "#FF4136",
			Waypoints: []Waypoint{{Lat: 47.95, Lon: -91.70}, {Lat: 47.96, Lon: -91.69}},
		},
	}

	data, err := MarshalRoutes(routes)
	require.NoError(t, err)

	restored, err := UnmarshalRoutes(data)
	require.NoError(t, err)
	assert.Equal(t, routes, restored)
}

func TestUnmarshalRoutes_Malformed(t *testing.T) {
	_, err := UnmarshalRoutes([]byte("{not json"))
	assert.Error(t, err)
}
