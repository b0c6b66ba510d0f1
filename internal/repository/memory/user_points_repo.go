// Package memory implements the repository contracts on in-memory tables.
// State does not survive the process; that is the intended scope.
package memory

import (
	"sync"
	"time"

	"github.com/dev-isidore/hhplus-tdd/internal/models"
)

type userPointsRepo struct {
	mu    sync.RWMutex
	table map[int64]models.UserPoint
}

func NewUserPointsRepo() *userPointsRepo {
	return &userPointsRepo{table: make(map[int64]models.UserPoint)}
}

func (r *userPointsRepo) SelectByID(id int64) models.UserPoint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if up, ok := r.table[id]; ok {
		return up
	}
	return models.UserPoint{ID: id, Point: 0, UpdateMillis: nowMillis()}
}

func (r *userPointsRepo) InsertOrUpdate(id int64, point int64) models.UserPoint {
	r.mu.Lock()
	defer r.mu.Unlock()
	up := models.UserPoint{ID: id, Point: point, UpdateMillis: nowMillis()}
	r.table[id] = up
	return up
}

func nowMillis() int64 { return time.Now().UnixMilli() }
