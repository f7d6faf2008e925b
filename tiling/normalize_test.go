package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirovelk/lozenge-tiling-go/tiling"
	"github.com/mirovelk/lozenge-tiling-go/vector"
)

func TestIsWallDisabledPeriodsNegativeSides(t *testing.T) {
	e := tiling.New(0, 0, 0, 10, 10, 10)
	assert.True(t, e.IsWall(vector.NewVec3(-1, 0, 0)))
	assert.True(t, e.IsWall(vector.NewVec3(0, -1, 0)))
	assert.True(t, e.IsWall(vector.NewVec3(0, 0, -1)))
}

func TestIsBoxFalseOnEmptyEngine(t *testing.T) {
	e := tiling.New(0, 0, 0, 10, 10, 10)
	assert.False(t, e.IsBox(vector.NewVec3(0, 0, 0)))
}

func TestCanAddOnlyCornerInitially(t *testing.T) {
	e := tiling.New(0, 0, 0, 10, 10, 10)
	assert.True(t, e.CanAdd(vector.NewVec3(0, 0, 0)))
	assert.False(t, e.CanAdd(vector.NewVec3(1, 0, 0)))
}

func TestPeriodicWallsAtOrigin(t *testing.T) {
	e := tiling.New(3, 3, 3, 1, 1, 1)
	assert.False(t, e.IsBox(vector.NewVec3(0, 0, 0)))
	assert.False(t, e.IsBox(vector.NewVec3(-1, 0, 0)))
	assert.True(t, e.IsWall(vector.NewVec3(-1, 0, 0)))
	assert.True(t, e.IsWall(vector.NewVec3(0, -1, 0)))
	assert.True(t, e.IsWall(vector.NewVec3(0, 0, -1)))
}
