package memory

import (
	"sync"

	"github.com/dev-isidore/hhplus-tdd/internal/models"
)

type pointHistoriesRepo struct {
	mu     sync.Mutex
	table  []models.PointHistory
	cursor int64
}

func NewPointHistoriesRepo() *pointHistoriesRepo {
	return &pointHistoriesRepo{cursor: 1}
}

func (r *pointHistoriesRepo) Insert(userID, amount int64, typ models.TransactionType, timeMillis int64) models.PointHistory {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := models.PointHistory{
		ID:         r.cursor,
		UserID:     userID,
		Type:       typ,
		Amount:     amount,
		TimeMillis: timeMillis,
	}
	r.cursor++
	r.table = append(r.table, h)
	return h
}

func (r *pointHistoriesRepo) SelectAllByUserID(userID int64) []models.PointHistory {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.PointHistory, 0)
	for _, h := range r.table {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out
}
