package domain

// Recorder is the route-recording state machine. It owns the saved collection,
// the in-progress route, the recording flag, and the selection pointer. It is a
// pure state object: no I/O, no locking, mutated by exactly one logical actor.
//
// States: Idle (map clicks ignored) and Recording (map clicks append waypoints
// to the in-progress route).
type Recorder struct {
	routes     []*Route
	current    *Route
	recording  bool
	selectedID int64 // 0 means no selection; route ids start at 1
	nextID     int64
}

// NewRecorder creates a recorder in the Idle state with an empty saved
// collection and a fresh in-progress route with id 1.
func NewRecorder() *Recorder {
	r := &Recorder{nextID: 1}
	r.current = NewRoute(r.nextID)
	r.nextID++
	return r
}

// Restore replaces the saved collection with routes loaded from the
// persistence substrate. The next in-progress id continues past the highest
// restored id so ids are never reused. Recording state and selection reset to
// their defaults, as on any fresh load.
func (r *Recorder) Restore(routes []*Route) {
	r.routes = routes
	r.recording = false
	r.selectedID = 0

	var maxID int64
	for _, route := range routes {
		if route.ID > maxID {
			maxID = route.ID
		}
	}
	r.nextID = maxID + 1
	r.current = NewRoute(r.nextID)
	r.nextID++
}

// ToggleRecording flips between Idle and Recording and returns the new state.
// Stopping does not discard waypoints already captured on the in-progress
// route; they persist until an explicit save or a fresh load.
func (r *Recorder) ToggleRecording() bool {
	r.recording = !r.recording
	return r.recording
}

// Recording reports whether the recorder is capturing map clicks.
func (r *Recorder) Recording() bool {
	return r.recording
}

// AddWaypoint appends a clicked coordinate pair to the in-progress route.
// Clicks received while Idle are silently ignored; the return value reports
// whether the waypoint was accepted.
func (r *Recorder) AddWaypoint(lat, lon float64) bool {
	if !r.recording {
		return false
	}
	r.current.Waypoints = append(r.current.Waypoints, Waypoint{Lat: lat, Lon: lon})
	return true
}

// Save moves the in-progress route into the saved collection. It fails when
// the route has fewer than 2 waypoints, leaving all state untouched. On
// success a deep copy joins the collection, a fresh in-progress route is
// created with the next id, and the recorder is forced to Idle. The saved copy
// is returned.
func (r *Recorder) Save() (*Route, bool) {
	if !r.current.CanSave() {
		return nil, false
	}

	saved := r.current.Clone()
	r.routes = append(r.routes, saved)

	r.current = NewRoute(r.nextID)
	r.nextID++
	r.recording = false

	return saved, true
}

// Delete removes the route with the given id from the saved collection. A
// missing id is a silent no-op. Deleting the currently selected route clears
// the selection pointer.
func (r *Recorder) Delete(id int64) bool {
	for i, route := range r.routes {
		if route.ID == id {
			r.routes = append(r.routes[:i], r.routes[i+1:]...)
			if r.selectedID == id {
				r.selectedID = 0
			}
			return true
		}
	}
	return false
}

// SetName sets the in-progress route's name.
func (r *Recorder) SetName(name string) {
	r.current.Name = name
}

// SetDescription sets the in-progress route's description.
func (r *Recorder) SetDescription(description string) {
	r.current.Description = description
}

// Select points the selection at a saved route. Selecting an id not present in
// the collection fails and leaves any existing selection in place.
func (r *Recorder) Select(id int64) bool {
	for _, route := range r.routes {
		if route.ID == id {
			r.selectedID = id
			return true
		}
	}
	return false
}

// ClearSelection drops the selection pointer.
func (r *Recorder) ClearSelection() {
	r.selectedID = 0
}

// Selected returns the selected route id, or false when nothing is selected.
func (r *Recorder) Selected() (int64, bool) {
	if r.selectedID == 0 {
		return 0, false
	}
	return r.selectedID, true
}

// Routes returns the saved collection in insertion order. The slice is a copy;
// the Route values are shared and must be treated as read-only by callers.
func (r *Recorder) Routes() []*Route {
	out := make([]*Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Current returns the in-progress route.
func (r *Recorder) Current() *Route {
	return r.current
}
