// Package ordering plans position changes for the dense 1-based orderings
// used by questions within an assessment and answers within a question.
//
// Reordering swaps the moved item with the current occupant of the target
// position instead of shifting the whole scope. When the target position has
// no occupant the item takes it directly, which can leave the scope
// non-contiguous; that is accepted behaviour and never repaired. The swap
// keeps every reorder O(1) at the cost of those gaps.
package ordering

// Kind discriminates the three outcomes of planning a reorder.
type Kind int

const (
	// Move places the item on a vacant position. No other row is touched.
	Move Kind = iota + 1
	// Retain means the item already holds the target position.
	Retain
	// Swap exchanges positions with the current occupant. Both writes must
	// succeed or the whole operation fails.
	Swap
)

// Plan is the delta a repository applies inside one transaction.
type Plan struct {
	Kind          Kind
	ItemID        uint
	ItemOrder     int  // position the item receives
	OccupantID    uint // set for Swap
	OccupantOrder int  // position the occupant receives (the item's original)
}

// PlanReorder decides how itemID, currently at itemOrder, reaches target.
// hasOccupant reports whether occupantID currently holds target within the
// same scope. Target range validation ([1, count]) is the caller's job.
func PlanReorder(itemID uint, itemOrder int, occupantID uint, hasOccupant bool, target int) Plan {
	if !hasOccupant {
		return Plan{Kind: Move, ItemID: itemID, ItemOrder: target}
	}
	if occupantID == itemID {
		return Plan{Kind: Retain, ItemID: itemID, ItemOrder: itemOrder}
	}
	return Plan{
		Kind:          Swap,
		ItemID:        itemID,
		ItemOrder:     target,
		OccupantID:    occupantID,
		OccupantOrder: itemOrder,
	}
}
