package repository

import (
	"context"
	"errors"
	"time"

	"github.com/venturearena/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStartupNotFound = errors.New("STARTUP_NOT_FOUND")

type StartupRepository interface {
	Create(ctx context.Context, startup *model.Startup) error
	GetByID(ctx context.Context, id int64) (*model.Startup, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Startup, error)
	ListPending(ctx context.Context) ([]model.Startup, error)
	ListWithInvestments(ctx context.Context) ([]model.Startup, error)
	UpdateOutcome(ctx context.Context, id int64, outcome model.Outcome) error
	UpdateMultiplier(ctx context.Context, id int64, multiplier float64) error
}

type Startup struct {
	db *gorm.DB
}

func NewStartupRepository(db *gorm.DB) StartupRepository {
	return &Startup{db: db}
}

func (s *Startup) Create(ctx context.Context, startup *model.Startup) error {
	db := GetTx(ctx, s.db)
	return db.Create(startup).Error
}

func (s *Startup) GetByID(ctx context.Context, id int64) (*model.Startup, error) {
	var startup model.Startup

	err := GetTx(ctx, s.db).Where("id = ?", id).First(&startup).Error
	if err == nil {
		return &startup, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStartupNotFound
	}

	return nil, err
}

// GetByIDForUpdate locks the startup row until the enclosing transaction
// ends. A placement that reads PENDING through this lock cannot interleave
// with a resolution committing on the same row.
func (s *Startup) GetByIDForUpdate(ctx context.Context, id int64) (*model.Startup, error) {
	var startup model.Startup

	err := GetTx(ctx, s.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&startup).Error
	if err == nil {
		return &startup, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStartupNotFound
	}

	return nil, err
}

func (s *Startup) ListPending(ctx context.Context) ([]model.Startup, error) {
	var startups []model.Startup

	err := GetTx(ctx, s.db).
		Where("outcome = ?", model.OutcomePending).
		Order("created_at DESC").
		Find(&startups).Error
	if err != nil {
		return nil, err
	}

	return startups, nil
}

func (s *Startup) ListWithInvestments(ctx context.Context) ([]model.Startup, error) {
	var startups []model.Startup

	err := GetTx(ctx, s.db).
		Preload("Investments").
		Preload("Investments.Team").
		Order("created_at DESC").
		Find(&startups).Error
	if err != nil {
		return nil, err
	}

	return startups, nil
}

// UpdateOutcome is the resolution guard: the UPDATE is conditioned on the
// row still being PENDING, so of two concurrent resolutions exactly one
// affects a row. The loser sees ErrNoRowsAffected and must abort its
// transaction without applying any payout.
func (s *Startup) UpdateOutcome(ctx context.Context, id int64, outcome model.Outcome) error {
	db := GetTx(ctx, s.db)

	result := db.Model(&model.Startup{}).
		Where("id = ? AND outcome = ?", id, model.OutcomePending).
		Updates(map[string]interface{}{
			"outcome":    outcome,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// UpdateMultiplier shares the PENDING guard: once an outcome is decided the
// multiplier that paid out must stay on record unchanged.
func (s *Startup) UpdateMultiplier(ctx context.Context, id int64, multiplier float64) error {
	db := GetTx(ctx, s.db)

	result := db.Model(&model.Startup{}).
		Where("id = ? AND outcome = ?", id, model.OutcomePending).
		Updates(map[string]interface{}{
			"multiplier": multiplier,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
