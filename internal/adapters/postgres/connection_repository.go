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

type connectionRepository struct {
	db *gorm.DB
}

func (r *connectionRepository) ListEdges(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	var recs []connectionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR connected_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Connection, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainConnection(rec))
	}
	return out, nil
}

func (r *connectionRepository) Exists(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&connectionModel{}).
		Where("(user_id = ? AND connected_user_id = ?) OR (user_id = ? AND connected_user_id = ?)",
			userID, otherID, otherID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *connectionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&connectionModel{}).
		Where("user_id = ? OR connected_user_id = ?", userID, userID).
		Count(&count).Error
	return int(count), err
}

type connectionRequestRepository struct {
	db *gorm.DB
}

func (r *connectionRequestRepository) CreateWithNotificationTx(ctx context.Context, req domain.ConnectionRequest, notif domain.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := connectionRequestModel{
			RequestID: req.RequestID,
			FromID:    req.FromID,
			ToID:      req.ToID,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
		}
		if err := tx.Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return err
		}
		nRec := toNotificationModel(notif)
		return tx.Create(&nRec).Error
	})
}

func (r *connectionRequestRepository) GetByID(ctx context.Context, requestID uuid.UUID) (domain.ConnectionRequest, error) {
	var rec connectionRequestModel
	if err := r.db.WithContext(ctx).Where("request_id = ?", requestID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ConnectionRequest{}, domain.ErrNotFound
		}
		return domain.ConnectionRequest{}, err
	}
	return toDomainConnectionRequest(rec), nil
}

func (r *connectionRequestRepository) ListPendingTo(ctx context.Context, userID uuid.UUID) ([]domain.ConnectionRequest, error) {
	var recs []connectionRequestModel
	err := r.db.WithContext(ctx).
		Where("to_id = ? AND status = ?", userID, domain.ConnectionRequestPending).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ConnectionRequest, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainConnectionRequest(rec))
	}
	return out, nil
}

func (r *connectionRequestRepository) ExistsPendingBetween(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&connectionRequestModel{}).
		Where("status = ? AND ((from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?))",
			domain.ConnectionRequestPending, userID, otherID, otherID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AcceptTx performs the three-part accept write. The request row is locked
// first so a concurrent accept or reject of the same request loses cleanly.
func (r *connectionRequestRepository) AcceptTx(ctx context.Context, requestID uuid.UUID, edge domain.Connection, notif domain.Notification, decidedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := lockPendingRequest(tx, requestID)
		if err != nil {
			return err
		}

		if err := tx.Model(&connectionRequestModel{}).
			Where("request_id = ?", rec.RequestID).
			Updates(map[string]any{"status": domain.ConnectionRequestAccepted, "updated_at": decidedAt}).Error; err != nil {
			return err
		}

		eRec := connectionModel{
			ConnectionID:    edge.ConnectionID,
			UserID:          edge.UserID,
			ConnectedUserID: edge.ConnectedUserID,
			CreatedAt:       edge.CreatedAt,
		}
		if err := tx.Create(&eRec).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return err
		}

		nRec := toNotificationModel(notif)
		return tx.Create(&nRec).Error
	})
}

func (r *connectionRequestRepository) RejectTx(ctx context.Context, requestID uuid.UUID, notif domain.Notification, decidedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := lockPendingRequest(tx, requestID)
		if err != nil {
			return err
		}

		if err := tx.Model(&connectionRequestModel{}).
			Where("request_id = ?", rec.RequestID).
			Updates(map[string]any{"status": domain.ConnectionRequestRejected, "updated_at": decidedAt}).Error; err != nil {
			return err
		}

		nRec := toNotificationModel(notif)
		return tx.Create(&nRec).Error
	})
}

func lockPendingRequest(tx *gorm.DB, requestID uuid.UUID) (connectionRequestModel, error) {
	var rec connectionRequestModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return connectionRequestModel{}, domain.ErrNotFound
		}
		return connectionRequestModel{}, err
	}
	if rec.Status != domain.ConnectionRequestPending {
		return connectionRequestModel{}, domain.ErrConflict
	}
	return rec, nil
}
