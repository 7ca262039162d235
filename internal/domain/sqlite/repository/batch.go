package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FailedRow identifies the row a batch insert stopped on. The enclosing
// transaction is rolled back, so the table keeps none of the batch.
type FailedRow struct {
	Key string
	Err error
}

// insertBatch writes rows one at a time inside a single transaction. Row-level
// inserts are what make the offending row identifiable on constraint errors;
// SQLite is the sole writer here, so there is no throughput concern.
//
// With ignoreConflicts set, a duplicate primary key is skipped instead of
// failing (idempotent upsert for reference data).
func insertBatch[T any](db *gorm.DB, rows []T, key func(*T) string, ignoreConflicts bool) (inserted, skipped int, failed *FailedRow) {
	txErr := db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			stmt := tx.Omit(clause.Associations)
			if ignoreConflicts {
				stmt = stmt.Clauses(clause.OnConflict{DoNothing: true})
			}

			res := stmt.Create(&rows[i])
			if res.Error != nil {
				failed = &FailedRow{Key: key(&rows[i]), Err: res.Error}
				return res.Error
			}

			if res.RowsAffected == 0 {
				skipped++
			} else {
				inserted++
			}
		}
		return nil
	})

	if txErr != nil && failed == nil {
		// Commit itself failed; no single row to blame.
		failed = &FailedRow{Err: txErr}
	}

	if failed != nil {
		inserted, skipped = 0, 0
	}
	return inserted, skipped, failed
}
