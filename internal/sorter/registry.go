package sorter

// Direction is the order applied by the most recent sort of a column.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return ""
	}
}

// Arrow returns the header marker for the direction.
func (d Direction) Arrow() string {
	switch d {
	case Ascending:
		return "↑"
	case Descending:
		return "↓"
	default:
		return ""
	}
}

// next is a strict two-state toggle: anything but Ascending becomes Ascending.
func (d Direction) next() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Registry tracks the last applied direction per table and column.
// It is owned by whoever manages the tables and lives as long as they do.
type Registry struct {
	states map[string]map[int]Direction
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]map[int]Direction)}
}

// Direction returns the stored direction, Unsorted if the column was never sorted.
func (r *Registry) Direction(tableID string, col int) Direction {
	return r.states[tableID][col]
}

// Toggle flips the stored direction for the column and returns the new one.
func (r *Registry) Toggle(tableID string, col int) Direction {
	cols, ok := r.states[tableID]
	if !ok {
		cols = make(map[int]Direction)
		r.states[tableID] = cols
	}
	d := cols[col].next()
	cols[col] = d
	return d
}

// Columns returns a copy of every sorted column of a table.
func (r *Registry) Columns(tableID string) map[int]Direction {
	cols := r.states[tableID]
	out := make(map[int]Direction, len(cols))
	for c, d := range cols {
		out[c] = d
	}
	return out
}
