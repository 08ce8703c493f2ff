package outline

import (
	"fmt"
	"slices"
	"strings"
)

// Contour is an ordered run of points, open or closed. The zero Contour is
// not usable; obtain contours from NewContour so they carry an identity.
type Contour struct {
	id     ContourID
	points []Point
	closed bool
}

// NewContour creates an empty open contour with the given identity.
func NewContour(id ContourID) *Contour {
	return &Contour{id: id}
}

// ID returns the contour's identity.
func (c *Contour) ID() ContourID { return c.id }

// Len returns the number of points.
func (c *Contour) Len() int { return len(c.points) }

// IsClosed reports whether the contour is a closed loop.
func (c *Contour) IsClosed() bool { return c.closed }

// Points exposes the contour's point run in drawing order. The returned slice
// is the live backing store; callers must treat it as read-only.
func (c *Contour) Points() []Point { return c.points }

// At returns a pointer to the point at index i, or nil if i is out of range.
// The pointer stays valid until the next structural mutation.
func (c *Contour) At(i int) *Point {
	if i < 0 || i >= len(c.points) {
		return nil
	}
	return &c.points[i]
}

// IndexOf locates a point by identity.
func (c *Contour) IndexOf(id PointID) (int, bool) {
	for i := range c.points {
		if c.points[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// PointByID returns a pointer to the point with the given identity, or nil.
// The pointer stays valid until the next structural mutation.
func (c *Contour) PointByID(id PointID) *Point {
	if i, ok := c.IndexOf(id); ok {
		return &c.points[i]
	}
	return nil
}

// --- Neighborhood navigation -----------------------------------------------

// PrevIndex returns the index of the point preceding index i in drawing
// order. For closed contours the run wraps, so the predecessor of index 0 is
// the last point (and a single-point closed contour is its own neighbor).
// For open contours the first point has no predecessor.
func (c *Contour) PrevIndex(i int) (int, bool) {
	n := len(c.points)
	if n == 0 || i < 0 || i >= n {
		return -1, false
	}
	if c.closed {
		return (i + n - 1) % n, true
	}
	if i == 0 {
		return -1, false
	}
	return i - 1, true
}

// NextIndex returns the index of the point following index i in drawing
// order, wrapping for closed contours.
func (c *Contour) NextIndex(i int) (int, bool) {
	n := len(c.points)
	if n == 0 || i < 0 || i >= n {
		return -1, false
	}
	if c.closed {
		return (i + 1) % n, true
	}
	if i == n-1 {
		return -1, false
	}
	return i + 1, true
}

// Prev resolves PrevIndex to a point pointer.
func (c *Contour) Prev(i int) (*Point, bool) {
	if j, ok := c.PrevIndex(i); ok {
		return &c.points[j], true
	}
	return nil, false
}

// Next resolves NextIndex to a point pointer.
func (c *Contour) Next(i int) (*Point, bool) {
	if j, ok := c.NextIndex(i); ok {
		return &c.points[j], true
	}
	return nil, false
}

// --- Structural edits ------------------------------------------------------

// Append adds a point at the end of the run.
func (c *Contour) Append(p Point) {
	c.points = append(c.points, p)
}

// InsertAt inserts a point before index i. An index of Len() appends;
// out-of-range indices are clamped (and traced).
func (c *Contour) InsertAt(i int, p Point) {
	if i < 0 {
		tracer().Debugf("insert into %v: index %d clamped to 0", c.id, i)
		i = 0
	} else if i > len(c.points) {
		tracer().Debugf("insert into %v: index %d clamped to %d", c.id, i, len(c.points))
		i = len(c.points)
	}
	c.points = slices.Insert(c.points, i, p)
}

// RemoveID removes the point with the given identity. Removing an unknown
// identity is a no-op returning false.
func (c *Contour) RemoveID(id PointID) bool {
	i, ok := c.IndexOf(id)
	if !ok {
		tracer().Debugf("remove from %v: no point %v", c.id, id)
		return false
	}
	c.points = slices.Delete(c.points, i, i+1)
	return true
}

// Close marks the contour as a closed loop. Closing an empty contour is a
// no-op returning false; closing a closed contour is a silent no-op.
func (c *Contour) Close() bool {
	if len(c.points) == 0 {
		tracer().Debugf("close %v: contour is empty", c.id)
		return false
	}
	c.closed = true
	return true
}

// Open marks the contour as open again. The point run is unchanged.
func (c *Contour) Open() {
	c.closed = false
}

// Reverse flips the drawing order in place. Identities and the closed flag
// are preserved; previous and next neighbors swap roles.
func (c *Contour) Reverse() {
	slices.Reverse(c.points)
}

// Clone returns a deep copy sharing no storage with the receiver.
func (c *Contour) Clone() *Contour {
	return &Contour{
		id:     c.id,
		points: slices.Clone(c.points),
		closed: c.closed,
	}
}

// Equal reports whether two contours agree in identity, closedness and their
// exact point runs. Positions compare exactly.
func (c *Contour) Equal(o *Contour) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.id == o.id && c.closed == o.closed && slices.Equal(c.points, o.points)
}

// --- Winding ---------------------------------------------------------------

// IsClockwise reports the contour's winding using the shoelace sum over all
// points, control handles included, in a y-down coordinate system. Contours
// with fewer than 3 points report false.
func (c *Contour) IsClockwise() bool {
	n := len(c.points)
	if n < 3 {
		return false
	}
	sum := 0.0
	for i := range c.points {
		p := c.points[i].Pos
		q := c.points[(i+1)%n].Pos
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum > 0
}

func (c *Contour) String() string {
	var sb strings.Builder
	state := "open"
	if c.closed {
		state = "closed"
	}
	fmt.Fprintf(&sb, "%v %s [", c.id, state)
	for i := range c.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.points[i].String())
	}
	sb.WriteString("]")
	return sb.String()
}
