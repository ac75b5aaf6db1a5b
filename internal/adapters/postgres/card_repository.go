package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planora/planora/internal/domain"
)

type cardRepository struct {
	db *gorm.DB
}

func (r *cardRepository) CreateWithCalendarTx(ctx context.Context, card domain.ProfessionalCard, calendar domain.Calendar) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := toCardModel(card)
		if err := tx.Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return err
		}
		cal := toCalendarModel(calendar)
		return tx.Create(&cal).Error
	})
}

func (r *cardRepository) GetByID(ctx context.Context, cardID uuid.UUID) (domain.ProfessionalCard, error) {
	var rec professionalCardModel
	if err := r.db.WithContext(ctx).Where("card_id = ?", cardID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfessionalCard{}, domain.ErrNotFound
		}
		return domain.ProfessionalCard{}, err
	}
	return toDomainCard(rec), nil
}

func (r *cardRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.ProfessionalCard, error) {
	var recs []professionalCardModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapCards(recs), nil
}

func (r *cardRepository) ListFollowedBy(ctx context.Context, userID uuid.UUID) ([]domain.ProfessionalCard, error) {
	var recs []professionalCardModel
	err := r.db.WithContext(ctx).
		Where("card_id IN (?)", r.db.Model(&followingModel{}).Select("card_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return mapCards(recs), nil
}

func mapCards(recs []professionalCardModel) []domain.ProfessionalCard {
	out := make([]domain.ProfessionalCard, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainCard(rec))
	}
	return out
}

type followerRepository struct {
	db *gorm.DB
}

func (r *followerRepository) CreatePairTx(ctx context.Context, follower domain.Follower, following domain.Following) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fRec := followerModel{
			FollowerID: follower.FollowerID,
			UserID:     follower.UserID,
			CardID:     follower.CardID,
			CreatedAt:  follower.CreatedAt,
		}
		if err := tx.Create(&fRec).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return err
		}
		gRec := followingModel{
			FollowingID: following.FollowingID,
			UserID:      following.UserID,
			CardID:      following.CardID,
			CreatedAt:   following.CreatedAt,
		}
		if err := tx.Create(&gRec).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
}

func (r *followerRepository) DeletePairTx(ctx context.Context, userID, cardID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND card_id = ?", userID, cardID).Delete(&followerModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("user_id = ? AND card_id = ?", userID, cardID).Delete(&followingModel{}).Error
	})
}

func (r *followerRepository) Get(ctx context.Context, userID, cardID uuid.UUID) (domain.Follower, error) {
	var rec followerModel
	if err := r.db.WithContext(ctx).Where("user_id = ? AND card_id = ?", userID, cardID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Follower{}, domain.ErrNotFound
		}
		return domain.Follower{}, err
	}
	return domain.Follower{
		FollowerID: rec.FollowerID,
		UserID:     rec.UserID,
		CardID:     rec.CardID,
		CreatedAt:  rec.CreatedAt,
	}, nil
}

func (r *followerRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&followerModel{}).
		Where("card_id = ?", cardID).
		Count(&count).Error
	return int(count), err
}

func (r *followerRepository) CountFollowedBy(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&followingModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}

type cardManagerRepository struct {
	db *gorm.DB
}

func (r *cardManagerRepository) Create(ctx context.Context, row domain.ProfessionalCardManager) error {
	rec := cardManagerModel{
		ManagerID: row.ManagerID,
		CardID:    row.CardID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *cardManagerRepository) Exists(ctx context.Context, cardID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&cardManagerModel{}).
		Where("card_id = ? AND user_id = ?", cardID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cardManagerRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.ProfessionalCardManager, error) {
	var recs []cardManagerModel
	err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProfessionalCardManager, 0, len(recs))
	for _, rec := range recs {
		out = append(out, domain.ProfessionalCardManager{
			ManagerID: rec.ManagerID,
			CardID:    rec.CardID,
			UserID:    rec.UserID,
			CreatedAt: rec.CreatedAt,
		})
	}
	return out, nil
}
