package model

// Range is an inclusive [Min, Max] interval used for random draws.
type Range struct {
	Min float32 `yaml:"min" toml:"min"`
	Max float32 `yaml:"max" toml:"max"`
}

// NewRange creates a Range.
func NewRange(min, max float32) Range {
	return Range{Min: min, Max: max}
}

// Inverted reports whether Min is greater than Max.
func (r Range) Inverted() bool {
	return r.Min > r.Max
}

// Side selects which side of the curve's right-normal a group is offset to.
type Side int8

const (
	SidePositive Side = 1
	SideNegative Side = -1
)

// Sign returns +1 or -1. Zero value is treated as positive.
func (s Side) Sign() float32 {
	if s == SideNegative {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == SideNegative {
		return "negative"
	}
	return "positive"
}

// ParseSide converts "positive"/"negative" into a Side.
// Anything else is positive.
func ParseSide(s string) Side {
	if s == "negative" || s == "-" {
		return SideNegative
	}
	return SidePositive
}

// PlacementGroup is one band of props laid along the curve.
type PlacementGroup struct {
	Name    string
	Prefabs []string // ordered, assigned cyclically
	Radius  float32  // signed lateral offset from the centerline
	Side    Side
}

// Eligible reports whether the group has anything to spawn.
func (g PlacementGroup) Eligible() bool {
	return len(g.Prefabs) > 0
}

// PrefabAt returns the prefab for the n-th spawned instance of the group.
func (g PlacementGroup) PrefabAt(n int) string {
	return g.Prefabs[n%len(g.Prefabs)]
}
