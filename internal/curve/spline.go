package curve

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// lengthSubdivisions is the number of chords used to measure one segment.
const lengthSubdivisions = 32

// Modification describes what happened to a spline's knots.
type Modification int

const (
	KnotModified Modification = iota
	KnotInserted
	KnotRemoved
)

func (m Modification) String() string {
	switch m {
	case KnotModified:
		return "modified"
	case KnotInserted:
		return "inserted"
	case KnotRemoved:
		return "removed"
	default:
		return fmt.Sprintf("Modification(%d)", int(m))
	}
}

// Change is delivered to spline listeners after every knot edit.
type Change struct {
	Spline       *Spline
	KnotIndex    int
	Modification Modification
}

type segment struct {
	p0, p1, p2, p3 math32.Vector3
	length         float32
}

func (s *segment) point(u float32) math32.Vector3 {
	v := 1 - u
	b0 := v * v * v
	b1 := 3 * v * v * u
	b2 := 3 * v * u * u
	b3 := u * u * u
	return s.p0.MulScalar(b0).
		Add(s.p1.MulScalar(b1)).
		Add(s.p2.MulScalar(b2)).
		Add(s.p3.MulScalar(b3))
}

func (s *segment) derivative(u float32) math32.Vector3 {
	v := 1 - u
	return s.p1.Sub(s.p0).MulScalar(3 * v * v).
		Add(s.p2.Sub(s.p1).MulScalar(6 * v * u)).
		Add(s.p3.Sub(s.p2).MulScalar(3 * u * u))
}

// Spline is a Catmull-Rom spline through an ordered list of knots, stored as
// cubic Bézier segments. Normalized t is distributed across segments by arc
// length and parametrically inside a segment.
//
// Not safe for concurrent use.
type Spline struct {
	knots  []math32.Vector3
	closed bool

	segments   []segment
	cumulative []float32 // arc length at the end of each segment
	length     float32

	listeners []func(Change)
}

// NewSpline creates a spline through knots. A closed spline wraps the last
// knot back to the first.
func NewSpline(knots []math32.Vector3, closed bool) *Spline {
	s := &Spline{
		knots:  slices.Clone(knots),
		closed: closed,
	}
	s.rebuild()
	return s
}

// OnChange registers fn to be called after every knot edit.
func (s *Spline) OnChange(fn func(Change)) {
	s.listeners = append(s.listeners, fn)
}

// Closed reports whether the spline loops.
func (s *Spline) Closed() bool {
	return s.closed
}

// KnotCount returns the number of knots.
func (s *Spline) KnotCount() int {
	return len(s.knots)
}

// Knots returns a copy of the knot list.
func (s *Spline) Knots() []math32.Vector3 {
	return slices.Clone(s.knots)
}

// Knot returns the knot at index i.
func (s *Spline) Knot(i int) (math32.Vector3, error) {
	if i < 0 || i >= len(s.knots) {
		return math32.Vector3{}, fmt.Errorf("knot %d out of range [0,%d)", i, len(s.knots))
	}
	return s.knots[i], nil
}

// SetKnot moves knot i to p.
func (s *Spline) SetKnot(i int, p math32.Vector3) error {
	if i < 0 || i >= len(s.knots) {
		return fmt.Errorf("knot %d out of range [0,%d)", i, len(s.knots))
	}
	s.knots[i] = p
	s.rebuild()
	s.notify(i, KnotModified)
	return nil
}

// InsertKnot inserts p before index i. i == KnotCount appends.
func (s *Spline) InsertKnot(i int, p math32.Vector3) error {
	if i < 0 || i > len(s.knots) {
		return fmt.Errorf("knot %d out of range [0,%d]", i, len(s.knots))
	}
	s.knots = slices.Insert(s.knots, i, p)
	s.rebuild()
	s.notify(i, KnotInserted)
	return nil
}

// RemoveKnot deletes knot i.
func (s *Spline) RemoveKnot(i int) error {
	if i < 0 || i >= len(s.knots) {
		return fmt.Errorf("knot %d out of range [0,%d)", i, len(s.knots))
	}
	s.knots = slices.Delete(s.knots, i, i+1)
	s.rebuild()
	s.notify(i, KnotRemoved)
	return nil
}

// Length returns the arc length of the spline.
func (s *Spline) Length() float32 {
	return s.length
}

// Position returns the point at normalized t.
func (s *Spline) Position(t float32) math32.Vector3 {
	seg, u := s.locate(t)
	if seg == nil {
		if len(s.knots) == 1 {
			return s.knots[0]
		}
		return math32.Vector3{}
	}
	return seg.point(u)
}

// Tangent returns the derivative at normalized t. Zero for degenerate splines.
func (s *Spline) Tangent(t float32) math32.Vector3 {
	seg, u := s.locate(t)
	if seg == nil {
		return math32.Vector3{}
	}
	return seg.derivative(u)
}

func (s *Spline) locate(t float32) (*segment, float32) {
	if len(s.segments) == 0 {
		return nil, 0
	}
	t = math32.Clamp(t, 0, 1)
	d := t * s.length

	idx, _ := slices.BinarySearch(s.cumulative, d)
	if idx >= len(s.segments) {
		idx = len(s.segments) - 1
	}
	seg := &s.segments[idx]

	var start float32
	if idx > 0 {
		start = s.cumulative[idx-1]
	}
	if seg.length <= 0 {
		return seg, 0
	}
	return seg, math32.Clamp((d-start)/seg.length, 0, 1)
}

func (s *Spline) knotAt(i int) math32.Vector3 {
	n := len(s.knots)
	if s.closed {
		return s.knots[((i%n)+n)%n]
	}
	return s.knots[max(0, min(n-1, i))]
}

// rebuild recomputes Bézier segments and arc lengths from the knots.
// Control points use the Catmull-Rom to Bézier conversion (1/6 of the
// neighbour chord).
func (s *Spline) rebuild() {
	s.segments = s.segments[:0]
	s.cumulative = s.cumulative[:0]
	s.length = 0

	n := len(s.knots)
	if n < 2 {
		return
	}
	count := n - 1
	if s.closed {
		count = n
	}

	for i := range count {
		p0 := s.knotAt(i - 1)
		p1 := s.knotAt(i)
		p2 := s.knotAt(i + 1)
		p3 := s.knotAt(i + 2)

		seg := segment{
			p0: p1,
			p1: p1.Add(p2.Sub(p0).MulScalar(1.0 / 6)),
			p2: p2.Sub(p3.Sub(p1).MulScalar(1.0 / 6)),
			p3: p2,
		}
		seg.length = measure(&seg)

		s.length += seg.length
		s.segments = append(s.segments, seg)
		s.cumulative = append(s.cumulative, s.length)
	}
}

func measure(seg *segment) float32 {
	var total float32
	prev := seg.point(0)
	for i := 1; i <= lengthSubdivisions; i++ {
		p := seg.point(float32(i) / lengthSubdivisions)
		total += p.DistanceTo(prev)
		prev = p
	}
	return total
}

func (s *Spline) notify(index int, mod Modification) {
	ch := Change{Spline: s, KnotIndex: index, Modification: mod}
	for _, fn := range s.listeners {
		fn(ch)
	}
}
