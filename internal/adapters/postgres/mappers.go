package postgres

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/planora/planora/internal/domain"
)

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}
	return tags
}

func encodeData(data map[string]any) string {
	if len(data) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func decodeData(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return data
}

func toDomainUser(rec userModel) domain.User {
	return domain.User{
		UserID:       rec.UserID,
		Username:     rec.Username,
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Image:        rec.Image,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func toUserModel(u domain.User) userModel {
	return userModel{
		UserID:       u.UserID,
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Image:        u.Image,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomainCalendar(rec calendarModel) domain.Calendar {
	return domain.Calendar{
		CalendarID:         rec.CalendarID,
		Name:               rec.Name,
		Description:        rec.Description,
		IsPublic:           rec.IsPublic,
		Color:              rec.Color,
		OwnerID:            rec.OwnerID,
		ProfessionalCardID: rec.ProfessionalCardID,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

func toCalendarModel(c domain.Calendar) calendarModel {
	return calendarModel{
		CalendarID:         c.CalendarID,
		Name:               c.Name,
		Description:        c.Description,
		IsPublic:           c.IsPublic,
		Color:              c.Color,
		OwnerID:            c.OwnerID,
		ProfessionalCardID: c.ProfessionalCardID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toDomainCalendarManager(rec calendarManagerModel) domain.CalendarManager {
	return domain.CalendarManager{
		ManagerID:  rec.ManagerID,
		CalendarID: rec.CalendarID,
		UserID:     rec.UserID,
		CreatedAt:  rec.CreatedAt,
	}
}

func toDomainPlan(rec planModel) domain.Plan {
	return domain.Plan{
		PlanID:          rec.PlanID,
		Title:           rec.Title,
		Description:     rec.Description,
		StartDate:       rec.StartDate,
		EndDate:         rec.EndDate,
		Location:        rec.Location,
		OnlineLink:      rec.OnlineLink,
		MaxParticipants: rec.MaxParticipants,
		Price:           rec.Price,
		Tags:            decodeTags(rec.Tags),
		Visibility:      rec.Visibility,
		OwnerID:         rec.OwnerID,
		CalendarID:      rec.CalendarID,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func toPlanModel(p domain.Plan) planModel {
	return planModel{
		PlanID:          p.PlanID,
		Title:           p.Title,
		Description:     p.Description,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Location:        p.Location,
		OnlineLink:      p.OnlineLink,
		MaxParticipants: p.MaxParticipants,
		Price:           p.Price,
		Tags:            encodeTags(p.Tags),
		Visibility:      p.Visibility,
		OwnerID:         p.OwnerID,
		CalendarID:      p.CalendarID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toDomainParticipant(rec planParticipantModel) domain.PlanParticipant {
	return domain.PlanParticipant{
		ParticipantID: rec.ParticipantID,
		PlanID:        rec.PlanID,
		UserID:        rec.UserID,
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toDomainCard(rec professionalCardModel) domain.ProfessionalCard {
	return domain.ProfessionalCard{
		CardID:      rec.CardID,
		Name:        rec.Name,
		Category:    rec.Category,
		Description: rec.Description,
		Address:     rec.Address,
		Phone:       rec.Phone,
		Email:       rec.Email,
		Website:     rec.Website,
		Instagram:   rec.Instagram,
		Tags:        decodeTags(rec.Tags),
		OwnerID:     rec.OwnerID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func toCardModel(c domain.ProfessionalCard) professionalCardModel {
	return professionalCardModel{
		CardID:      c.CardID,
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		Website:     c.Website,
		Instagram:   c.Instagram,
		Tags:        encodeTags(c.Tags),
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toDomainConnection(rec connectionModel) domain.Connection {
	return domain.Connection{
		ConnectionID:    rec.ConnectionID,
		UserID:          rec.UserID,
		ConnectedUserID: rec.ConnectedUserID,
		CreatedAt:       rec.CreatedAt,
	}
}

func toDomainConnectionRequest(rec connectionRequestModel) domain.ConnectionRequest {
	return domain.ConnectionRequest{
		RequestID: rec.RequestID,
		FromID:    rec.FromID,
		ToID:      rec.ToID,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toDomainNotification(rec notificationModel) domain.Notification {
	return domain.Notification{
		NotificationID: rec.NotificationID,
		UserID:         rec.UserID,
		Type:           rec.Type,
		Title:          rec.Title,
		Message:        rec.Message,
		Data:           decodeData(rec.Data),
		CreatedAt:      rec.CreatedAt,
		ReadAt:         rec.ReadAt,
	}
}

func toNotificationModel(n domain.Notification) notificationModel {
	return notificationModel{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Data:           encodeData(n.Data),
		CreatedAt:      n.CreatedAt,
		ReadAt:         n.ReadAt,
	}
}
