package memory

import (
	repo "github.com/dev-isidore/hhplus-tdd/internal/repository"
)

type Repositories struct {
	Users          repo.Users
	UserPoints     repo.UserPoints
	PointHistories repo.PointHistories
}

func NewRepositories() Repositories {
	return Repositories{
		Users:          NewUsersRepo(),
		UserPoints:     NewUserPointsRepo(),
		PointHistories: NewPointHistoriesRepo(),
	}
}
