package repository

import (
	"fmt"

	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/ordering"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applyReorder executes a planned position change inside one transaction.
// Both rows of a swap are locked before either write so two concurrent
// reorders in the same scope cannot interleave; a row that vanished between
// planning and locking surfaces as a write failure for the whole operation.
func applyReorder(db *gorm.DB, entity interface{}, scopeColumn string, scopeID uint, plan ordering.Plan) error {
	if plan.Kind == ordering.Retain {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		ids := []uint{plan.ItemID}
		if plan.Kind == ordering.Swap {
			ids = append(ids, plan.OccupantID)
		}

		var lockedIDs []uint
		if err := tx.Model(entity).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(scopeColumn+" = ? AND id IN ?", scopeID, ids).
			Pluck("id", &lockedIDs).Error; err != nil {
			return err
		}
		if len(lockedIDs) != len(ids) {
			return apperr.Conflict("The ordering changed while the move was in flight, try again")
		}

		if plan.Kind == ordering.Swap {
			res := tx.Model(entity).
				Where(scopeColumn+" = ? AND id = ?", scopeID, plan.OccupantID).
				Update("order_index", plan.OccupantOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("reorder: occupant %d not updated", plan.OccupantID)
			}
		}

		res := tx.Model(entity).
			Where(scopeColumn+" = ? AND id = ?", scopeID, plan.ItemID).
			Update("order_index", plan.ItemOrder)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("reorder: item %d not updated", plan.ItemID)
		}
		return nil
	})
}
