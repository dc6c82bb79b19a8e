package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanReorderSwapsWithOccupant(t *testing.T) {
	plan := PlanReorder(10, 2, 20, true, 5)

	assert.Equal(t, Swap, plan.Kind)
	assert.Equal(t, uint(10), plan.ItemID)
	assert.Equal(t, 5, plan.ItemOrder)
	assert.Equal(t, uint(20), plan.OccupantID)
	assert.Equal(t, 2, plan.OccupantOrder)
}

func TestPlanReorderMovesToVacantPosition(t *testing.T) {
	plan := PlanReorder(10, 2, 0, false, 4)

	assert.Equal(t, Move, plan.Kind)
	assert.Equal(t, uint(10), plan.ItemID)
	assert.Equal(t, 4, plan.ItemOrder)
	assert.Zero(t, plan.OccupantID)
}

func TestPlanReorderRetainsCurrentPosition(t *testing.T) {
	plan := PlanReorder(10, 3, 10, true, 3)

	assert.Equal(t, Retain, plan.Kind)
	assert.Equal(t, 3, plan.ItemOrder)
}

func TestPlanReorderSwapIsSymmetric(t *testing.T) {
	// Moving A onto B and then B onto A restores the original layout.
	first := PlanReorder(1, 1, 2, true, 2)
	second := PlanReorder(2, first.OccupantOrder, 1, true, first.ItemOrder)

	assert.Equal(t, Swap, first.Kind)
	assert.Equal(t, Swap, second.Kind)
	assert.Equal(t, 1, second.OccupantOrder)
	assert.Equal(t, 2, second.ItemOrder)
}
