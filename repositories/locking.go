package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// withRowLock adds SELECT ... FOR UPDATE on postgres. sqlite, used by the
// test suite, has no row locks; its single-writer model already serializes
// transactions.
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
