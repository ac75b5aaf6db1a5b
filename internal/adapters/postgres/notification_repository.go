package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planora/planora/internal/domain"
)

type notificationRepository struct {
	db *gorm.DB
}

func (r *notificationRepository) Create(ctx context.Context, row domain.Notification) error {
	rec := toNotificationModel(row)
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *notificationRepository) GetByID(ctx context.Context, notificationID uuid.UUID) (domain.Notification, error) {
	var rec notificationModel
	if err := r.db.WithContext(ctx).Where("notification_id = ?", notificationID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Notification{}, domain.ErrNotFound
		}
		return domain.Notification{}, err
	}
	return toDomainNotification(rec), nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	var recs []notificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainNotification(rec))
	}
	return out, nil
}

func (r *notificationRepository) Update(ctx context.Context, row domain.Notification) error {
	rec := toNotificationModel(row)
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("notification_id = ?", rec.NotificationID).
		Updates(map[string]any{"read_at": rec.ReadAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
