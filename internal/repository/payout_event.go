package repository

import (
	"context"
	"time"

	"github.com/venturearena/backend/internal/model"
	"gorm.io/gorm"
)

type PayoutEventRepository interface {
	Create(ctx context.Context, event *model.PayoutEvent) error
	FindUnpublished(ctx context.Context, limit int) ([]model.PayoutEvent, error)
	MarkPublished(ctx context.Context, id int64) error
}

type PayoutEvent struct {
	db *gorm.DB
}

func NewPayoutEventRepository(db *gorm.DB) PayoutEventRepository {
	return &PayoutEvent{db: db}
}

func (r *PayoutEvent) Create(ctx context.Context, event *model.PayoutEvent) error {
	db := GetTx(ctx, r.db)
	return db.Create(event).Error
}

func (r *PayoutEvent) FindUnpublished(ctx context.Context, limit int) ([]model.PayoutEvent, error) {
	var events []model.PayoutEvent

	err := GetTx(ctx, r.db).
		Preload("Startup").
		Where("published = ?", false).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *PayoutEvent) MarkPublished(ctx context.Context, id int64) error {
	db := GetTx(ctx, r.db)

	now := time.Now()
	result := db.Model(&model.PayoutEvent{}).
		Where("id = ? AND published = ?", id, false).
		Updates(map[string]interface{}{
			"published":    true,
			"published_at": now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
