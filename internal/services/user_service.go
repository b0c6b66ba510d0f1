package services

import (
	"strings"

	"github.com/dev-isidore/hhplus-tdd/internal/models"
	repo "github.com/dev-isidore/hhplus-tdd/internal/repository"
)

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

func (s *UserService) Create(name string) (models.User, error) {
	u := models.User{Name: strings.TrimSpace(name)}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	return s.r.Insert(u.Name), nil
}

func (s *UserService) Exists(id int64) bool {
	_, ok := s.r.FindByID(id)
	return ok
}
