package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planora/planora/internal/domain"
)

type participantRepository struct {
	db *gorm.DB
}

func (r *participantRepository) Create(ctx context.Context, row domain.PlanParticipant) error {
	rec := planParticipantModel{
		ParticipantID: row.ParticipantID,
		PlanID:        row.PlanID,
		UserID:        row.UserID,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, participantID uuid.UUID) (domain.PlanParticipant, error) {
	var rec planParticipantModel
	if err := r.db.WithContext(ctx).Where("participant_id = ?", participantID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PlanParticipant{}, domain.ErrNotFound
		}
		return domain.PlanParticipant{}, err
	}
	return toDomainParticipant(rec), nil
}

func (r *participantRepository) GetByPlanUser(ctx context.Context, planID, userID uuid.UUID) (domain.PlanParticipant, error) {
	var rec planParticipantModel
	if err := r.db.WithContext(ctx).Where("plan_id = ? AND user_id = ?", planID, userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PlanParticipant{}, domain.ErrNotFound
		}
		return domain.PlanParticipant{}, err
	}
	return toDomainParticipant(rec), nil
}

func (r *participantRepository) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.PlanParticipant, error) {
	var recs []planParticipantModel
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlanParticipant, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainParticipant(rec))
	}
	return out, nil
}

func (r *participantRepository) CountApproved(ctx context.Context, planID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&planParticipantModel{}).
		Where("plan_id = ? AND status = ?", planID, domain.ParticipantStatusApproved).
		Count(&count).Error
	return int(count), err
}

func (r *participantRepository) CountByPlan(ctx context.Context, planID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&planParticipantModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error
	return int(count), err
}

// Decide locks the participant row and its plan row, recounts approvals
// under the same transaction and applies the terminal status. Concurrent
// decisions for the same plan serialize on the plan lock regardless of
// which participant rows they touch, so the loser of the last seat sees
// the recount after the winner committed.
func (r *participantRepository) Decide(ctx context.Context, participantID uuid.UUID, status string, capacity int, decidedAt time.Time) (domain.PlanParticipant, error) {
	var result domain.PlanParticipant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec planParticipantModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("participant_id = ?", participantID).
			Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if rec.Status != domain.ParticipantStatusPending {
			return domain.ErrConflict
		}

		var planRec planModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("plan_id = ?", rec.PlanID).
			Take(&planRec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if status == domain.ParticipantStatusApproved && capacity > 0 {
			var approved int64
			if err := tx.Model(&planParticipantModel{}).
				Where("plan_id = ? AND status = ?", rec.PlanID, domain.ParticipantStatusApproved).
				Count(&approved).Error; err != nil {
				return err
			}
			if int(approved) >= capacity {
				return domain.ErrCapacityReached
			}
		}

		rec.Status = status
		rec.UpdatedAt = decidedAt
		if err := tx.Model(&planParticipantModel{}).
			Where("participant_id = ?", participantID).
			Updates(map[string]any{"status": status, "updated_at": decidedAt}).Error; err != nil {
			return err
		}

		result = toDomainParticipant(rec)
		return nil
	})
	if err != nil {
		return domain.PlanParticipant{}, err
	}
	return result, nil
}
