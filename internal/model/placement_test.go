package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSide(t *testing.T) {
	assert.Equal(t, float32(1), SidePositive.Sign())
	assert.Equal(t, float32(-1), SideNegative.Sign())
	assert.Equal(t, float32(1), Side(0).Sign())

	assert.Equal(t, SideNegative, ParseSide("negative"))
	assert.Equal(t, SidePositive, ParseSide("positive"))
	assert.Equal(t, SidePositive, ParseSide(""))
	assert.Equal(t, "negative", SideNegative.String())
}

func TestPlacementGroup_Eligible(t *testing.T) {
	assert.False(t, PlacementGroup{}.Eligible())
	assert.False(t, PlacementGroup{Prefabs: []string{}}.Eligible())
	assert.True(t, PlacementGroup{Prefabs: []string{"rock"}}.Eligible())
}

func TestPlacementGroup_PrefabAtCycles(t *testing.T) {
	g := PlacementGroup{Prefabs: []string{"a", "b", "c"}}

	got := make([]string, 0, 7)
	for n := range 7 {
		got = append(got, g.PrefabAt(n))
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a"}, got)
}

func TestRange_Inverted(t *testing.T) {
	assert.False(t, NewRange(-3, 3).Inverted())
	assert.False(t, NewRange(1, 1).Inverted())
	assert.True(t, NewRange(2, 1).Inverted())
}
