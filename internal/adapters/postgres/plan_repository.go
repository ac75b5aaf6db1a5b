package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planora/planora/internal/domain"
)

type planRepository struct {
	db *gorm.DB
}

func (r *planRepository) Create(ctx context.Context, row domain.Plan) error {
	rec := toPlanModel(row)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, planID uuid.UUID) (domain.Plan, error) {
	var rec planModel
	if err := r.db.WithContext(ctx).Where("plan_id = ?", planID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Plan{}, domain.ErrNotFound
		}
		return domain.Plan{}, err
	}
	return toDomainPlan(rec), nil
}

func (r *planRepository) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	approved := r.db.Model(&planParticipantModel{}).
		Select("plan_id").
		Where("user_id = ? AND status = ?", userID, domain.ParticipantStatusApproved)
	followedCalendars := r.db.Model(&calendarModel{}).
		Select("calendar_id").
		Where("is_public AND professional_card_id IN (?)",
			r.db.Model(&followingModel{}).Select("card_id").Where("user_id = ?", userID))

	var recs []planModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Or("plan_id IN (?)", approved).
		Or("visibility = ? AND calendar_id IN (?)", domain.VisibilityPublic, followedCalendars).
		Order("start_date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapPlans(recs), nil
}

func (r *planRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	var recs []planModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Order("start_date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapPlans(recs), nil
}

func (r *planRepository) ListByApprovedParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	var recs []planModel
	err := r.db.WithContext(ctx).
		Where("plan_id IN (?)", r.db.Model(&planParticipantModel{}).
			Select("plan_id").
			Where("user_id = ? AND status = ?", userID, domain.ParticipantStatusApproved)).
		Order("start_date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapPlans(recs), nil
}

func (r *planRepository) ListUpcomingPublicByCalendar(ctx context.Context, calendarID uuid.UUID, now time.Time) ([]domain.Plan, error) {
	var recs []planModel
	err := r.db.WithContext(ctx).
		Where("calendar_id = ? AND visibility = ? AND end_date > ?", calendarID, domain.VisibilityPublic, now).
		Order("start_date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapPlans(recs), nil
}

func mapPlans(recs []planModel) []domain.Plan {
	out := make([]domain.Plan, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainPlan(rec))
	}
	return out
}
