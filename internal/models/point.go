package models

// TransactionType labels a history entry with the operation that produced it.
type TransactionType string

const (
	TxnCharge TransactionType = "CHARGE"
	TxnUse    TransactionType = "USE"
)

// UserPoint is the current point balance of a user. The latest write for an
// id is authoritative; only the point service mutates it.
type UserPoint struct {
	ID           int64 `json:"id"`
	Point        int64 `json:"point"`
	UpdateMillis int64 `json:"updateMillis"`
}

// PointHistory is one committed charge/use transaction. Entries are immutable
// and ordered per user by insertion, which equals ascending ID order.
type PointHistory struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	Type       TransactionType `json:"type"`
	Amount     int64           `json:"amount"`
	TimeMillis int64           `json:"timeMillis"`
}
