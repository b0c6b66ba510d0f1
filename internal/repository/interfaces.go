package repository

import "github.com/dev-isidore/hhplus-tdd/internal/models"

// UserPoints holds the current balance per user id.
type UserPoints interface {
	// SelectByID never fails: absent ids yield a fresh zero-balance record
	// stamped with the current time.
	SelectByID(id int64) models.UserPoint
	// InsertOrUpdate overwrites unconditionally and returns the persisted
	// record including the store-assigned UpdateMillis.
	InsertOrUpdate(id int64, point int64) models.UserPoint
}

// PointHistories holds the append-only transaction log per user id.
type PointHistories interface {
	// Insert assigns the next monotonically increasing id and appends.
	Insert(userID, amount int64, typ models.TransactionType, timeMillis int64) models.PointHistory
	// SelectAllByUserID returns the user's entries in insertion order;
	// empty slice when none exist.
	SelectAllByUserID(userID int64) []models.PointHistory
}

// Users is the directory of known user ids.
type Users interface {
	FindByID(id int64) (models.User, bool)
	Insert(name string) models.User
}
