package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planora/planora/internal/domain"
)

type calendarRepository struct {
	db *gorm.DB
}

func (r *calendarRepository) GetByID(ctx context.Context, calendarID uuid.UUID) (domain.Calendar, error) {
	var rec calendarModel
	if err := r.db.WithContext(ctx).Where("calendar_id = ?", calendarID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Calendar{}, domain.ErrNotFound
		}
		return domain.Calendar{}, err
	}
	return toDomainCalendar(rec), nil
}

func (r *calendarRepository) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Calendar, error) {
	var recs []calendarModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Or("is_public AND professional_card_id IN (?)",
			r.db.Model(&followingModel{}).Select("card_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapCalendars(recs), nil
}

func (r *calendarRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Calendar, error) {
	var recs []calendarModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapCalendars(recs), nil
}

func (r *calendarRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Calendar, error) {
	var recs []calendarModel
	err := r.db.WithContext(ctx).
		Where("professional_card_id = ?", cardID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapCalendars(recs), nil
}

func (r *calendarRepository) ListPublicByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Calendar, error) {
	var recs []calendarModel
	err := r.db.WithContext(ctx).
		Where("professional_card_id = ? AND is_public", cardID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapCalendars(recs), nil
}

func mapCalendars(recs []calendarModel) []domain.Calendar {
	out := make([]domain.Calendar, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainCalendar(rec))
	}
	return out
}

type calendarManagerRepository struct {
	db *gorm.DB
}

func (r *calendarManagerRepository) Create(ctx context.Context, row domain.CalendarManager) error {
	rec := calendarManagerModel{
		ManagerID:  row.ManagerID,
		CalendarID: row.CalendarID,
		UserID:     row.UserID,
		CreatedAt:  row.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *calendarManagerRepository) Exists(ctx context.Context, calendarID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&calendarManagerModel{}).
		Where("calendar_id = ? AND user_id = ?", calendarID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *calendarManagerRepository) ListByCalendar(ctx context.Context, calendarID uuid.UUID) ([]domain.CalendarManager, error) {
	var recs []calendarManagerModel
	err := r.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.CalendarManager, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainCalendarManager(rec))
	}
	return out, nil
}
