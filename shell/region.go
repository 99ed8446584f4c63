package shell

// Point is a position in logical window pixels
type Point struct {
	X, Y int
}

// Rect is an axis-aligned area in logical window pixels
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) is inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle of r
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Action runs when a region is clicked
type Action func(*App)

// Region is a clickable area that belongs to one program state
type Region struct {
	Bounds Rect
	State  ProgramState
	Label  string
	Action Action
}

// Registry is the list of clickable regions. Entries are scoped by program
// state and dropped when the shell leaves that state.
type Registry struct {
	regions []Region
}

// Add appends a region
func (r *Registry) Add(region Region) {
	r.regions = append(r.regions, region)
}

// Clear drops every region of a state
func (r *Registry) Clear(state ProgramState) {
	kept := r.regions[:0]
	for _, region := range r.regions {
		if region.State != state {
			kept = append(kept, region)
		}
	}
	r.regions = kept
}

// In returns the regions of a state in registration order
func (r *Registry) In(state ProgramState) []Region {
	var out []Region
	for _, region := range r.regions {
		if region.State == state {
			out = append(out, region)
		}
	}
	return out
}

// Hit returns every region of state that contains (x, y)
func (r *Registry) Hit(state ProgramState, x, y int) []Region {
	var out []Region
	for _, region := range r.regions {
		if region.State == state && region.Bounds.Contains(x, y) {
			out = append(out, region)
		}
	}
	return out
}

// Len returns the number of registered regions across all states
func (r *Registry) Len() int {
	return len(r.regions)
}
