package mysql

import (
	"context"

	"sarasblogg/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct{}

func (r *OutboxRepository) Enqueue(ob *model.BloggOutbox) error {
	return DB.Create(ob).Error
}

// ListPending fetches un-sent rows oldest first.
func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]model.BloggOutbox, error) {
	var rows []model.BloggOutbox
	err := DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return DB.WithContext(ctx).Model(&model.BloggOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

// MarkRetry bumps the retry counter; rows past maxRetry are parked as
// failed so the relayer stops picking them up.
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64, maxRetry int) error {
	return DB.WithContext(ctx).Model(&model.BloggOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"retry":  gorm.Expr("retry + 1"),
			"status": gorm.Expr("CASE WHEN retry + 1 >= ? THEN 2 ELSE 0 END", maxRetry),
		}).Error
}
