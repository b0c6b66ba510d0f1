package memory

import (
	"sync"

	"github.com/dev-isidore/hhplus-tdd/internal/models"
)

type usersRepo struct {
	mu    sync.RWMutex
	table map[int64]models.User
}

func NewUsersRepo() *usersRepo {
	return &usersRepo{table: make(map[int64]models.User)}
}

func (r *usersRepo) FindByID(id int64) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.table[id]
	return u, ok
}

// Insert assigns ids sequentially from zero.
func (r *usersRepo) Insert(name string) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := models.User{ID: int64(len(r.table)), Name: name}
	r.table[u.ID] = u
	return u
}
