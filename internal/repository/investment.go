package repository

import (
	"context"

	"github.com/venturearena/backend/internal/model"
	"gorm.io/gorm"
)

type InvestmentRepository interface {
	Create(ctx context.Context, investment *model.Investment) error
	ListByStartupID(ctx context.Context, startupID int64) ([]model.Investment, error)
	ListByTeamID(ctx context.Context, teamID int64) ([]model.Investment, error)
}

type Investment struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &Investment{db: db}
}

func (i *Investment) Create(ctx context.Context, investment *model.Investment) error {
	db := GetTx(ctx, i.db)
	return db.Create(investment).Error
}

func (i *Investment) ListByStartupID(ctx context.Context, startupID int64) ([]model.Investment, error) {
	var investments []model.Investment

	err := GetTx(ctx, i.db).
		Where("startup_id = ?", startupID).
		Order("id ASC").
		Find(&investments).Error
	if err != nil {
		return nil, err
	}

	return investments, nil
}

func (i *Investment) ListByTeamID(ctx context.Context, teamID int64) ([]model.Investment, error) {
	var investments []model.Investment

	err := GetTx(ctx, i.db).
		Preload("Startup").
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&investments).Error
	if err != nil {
		return nil, err
	}

	return investments, nil
}
