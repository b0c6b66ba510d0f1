package services

import (
	"fmt"
	"log/slog"

	"github.com/dev-isidore/hhplus-tdd/internal/lock"
	"github.com/dev-isidore/hhplus-tdd/internal/models"
	repo "github.com/dev-isidore/hhplus-tdd/internal/repository"
)

// PointService serializes balance mutations per user: while one charge/use
// holds a user's lock, no other charge/use for that user can interleave its
// read-compute-write-append sequence. Operations on distinct users never
// contend. Reads take no lock.
type PointService struct {
	users     repo.Users
	points    repo.UserPoints
	histories repo.PointHistories
	locks     *lock.Registry
}

func NewPointService(u repo.Users, p repo.UserPoints, h repo.PointHistories, locks *lock.Registry) *PointService {
	return &PointService{users: u, points: p, histories: h, locks: locks}
}

// GetPoint returns the user's current balance record. Unknown users fail with
// models.ErrUserNotFound; known users without a record get the store's zero
// default.
func (s *PointService) GetPoint(id int64) (models.UserPoint, error) {
	if err := s.checkUser(id); err != nil {
		return models.UserPoint{}, err
	}
	return s.points.SelectByID(id), nil
}

// GetHistories returns the user's transactions in insertion order; an empty
// slice when none exist.
func (s *PointService) GetHistories(id int64) ([]models.PointHistory, error) {
	if err := s.checkUser(id); err != nil {
		return nil, err
	}
	return s.histories.SelectAllByUserID(id), nil
}

// Charge adds amount to the user's balance and records a CHARGE entry carrying
// the balance write's timestamp.
func (s *PointService) Charge(id, amount int64) (models.UserPoint, error) {
	if err := checkAmount(amount); err != nil {
		return models.UserPoint{}, err
	}
	mu := s.locks.Get(id)
	mu.Lock()
	defer mu.Unlock()

	// Existence is re-verified inside the critical section through the same
	// read path the public getter uses.
	current, err := s.GetPoint(id)
	if err != nil {
		return models.UserPoint{}, err
	}
	charged := s.points.InsertOrUpdate(id, current.Point+amount)
	s.histories.Insert(id, amount, models.TxnCharge, charged.UpdateMillis)
	return charged, nil
}

// Use subtracts amount from the user's balance and records a USE entry. An
// amount above the current balance fails with models.ErrInsufficientPoint and
// leaves both stores untouched; an amount exactly equal to the balance
// succeeds and drains it to zero.
func (s *PointService) Use(id, amount int64) (models.UserPoint, error) {
	if err := checkAmount(amount); err != nil {
		return models.UserPoint{}, err
	}
	mu := s.locks.Get(id)
	mu.Lock()
	defer mu.Unlock()

	current, err := s.GetPoint(id)
	if err != nil {
		return models.UserPoint{}, err
	}
	if amount > current.Point {
		slog.Warn("use rejected", "id", id, "amount", amount, "point", current.Point)
		return models.UserPoint{}, fmt.Errorf("%w: amount %d exceeds point %d of user %d",
			models.ErrInsufficientPoint, amount, current.Point, id)
	}
	used := s.points.InsertOrUpdate(id, current.Point-amount)
	s.histories.Insert(id, amount, models.TxnUse, used.UpdateMillis)
	return used, nil
}

func (s *PointService) checkUser(id int64) error {
	if _, ok := s.users.FindByID(id); !ok {
		slog.Warn("user does not exist", "id", id)
		return fmt.Errorf("%w: user %d", models.ErrUserNotFound, id)
	}
	return nil
}

func checkAmount(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount %d", models.ErrNegativeAmount, amount)
	}
	return nil
}
