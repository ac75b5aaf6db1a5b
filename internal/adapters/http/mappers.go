package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/contracts"
	"github.com/planora/planora/internal/domain"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toUserDTO(u domain.PublicUser) contracts.UserDTO {
	return contracts.UserDTO{
		UserID: u.UserID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
	}
}

func toAccountDTO(u domain.User) contracts.UserDTO {
	return contracts.UserDTO{
		UserID:   u.UserID.String(),
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Image:    u.Image,
	}
}

func toCalendarDTO(c domain.Calendar) contracts.CalendarDTO {
	dto := contracts.CalendarDTO{
		CalendarID:  c.CalendarID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsPublic:    c.IsPublic,
		Color:       c.Color,
		OwnerID:     c.OwnerID.String(),
	}
	if c.ProfessionalCardID != nil && *c.ProfessionalCardID != uuid.Nil {
		dto.ProfessionalCardID = c.ProfessionalCardID.String()
	}
	return dto
}

func toCalendarSummaryDTO(s application.CalendarSummary) contracts.CalendarDTO {
	dto := toCalendarDTO(s.Calendar)
	dto.CardName = s.CardName
	return dto
}

func toPlanDTO(p domain.Plan) contracts.PlanDTO {
	return contracts.PlanDTO{
		PlanID:          p.PlanID.String(),
		Title:           p.Title,
		Description:     p.Description,
		StartDate:       formatTime(p.StartDate),
		EndDate:         formatTime(p.EndDate),
		Location:        p.Location,
		OnlineLink:      p.OnlineLink,
		MaxParticipants: p.MaxParticipants,
		Price:           p.Price,
		Tags:            p.Tags,
		Visibility:      p.Visibility,
		OwnerID:         p.OwnerID.String(),
		CalendarID:      p.CalendarID.String(),
		CreatedAt:       formatTime(p.CreatedAt),
	}
}

func toPlanDetailsDTO(d application.PlanDetails) contracts.PlanDetailsResponse {
	participants := make([]contracts.ParticipantDTO, 0, len(d.Participants))
	for _, p := range d.Participants {
		participants = append(participants, contracts.ParticipantDTO{
			ParticipationID: p.Participant.ParticipantID.String(),
			Status:          p.Participant.Status,
			User:            toUserDTO(p.User),
			RequestedAt:     formatTime(p.Participant.CreatedAt),
		})
	}
	return contracts.PlanDetailsResponse{
		Plan:         toPlanDTO(d.Plan),
		Owner:        toUserDTO(d.Owner),
		Participants: participants,
	}
}

func toEventDTO(e application.CalendarEvent) contracts.EventDTO {
	return contracts.EventDTO{
		PlanID:       e.PlanID.String(),
		Title:        e.Title,
		Start:        formatTime(e.Start),
		End:          formatTime(e.End),
		CalendarID:   e.CalendarID.String(),
		CalendarName: e.CalendarName,
		Color:        e.Color,
	}
}

func toCardDTO(c domain.ProfessionalCard) contracts.CardDTO {
	return contracts.CardDTO{
		CardID:      c.CardID.String(),
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		Website:     c.Website,
		Instagram:   c.Instagram,
		Tags:        c.Tags,
		OwnerID:     c.OwnerID.String(),
		CreatedAt:   formatTime(c.CreatedAt),
	}
}

func toCardDetailsDTO(d application.CardDetails) contracts.CardDetailsResponse {
	calendars := make([]contracts.CardCalendarDTO, 0, len(d.Calendars))
	for _, cc := range d.Calendars {
		plans := make([]contracts.PlanDTO, 0, len(cc.Plans))
		for _, p := range cc.Plans {
			plans = append(plans, toPlanDTO(p))
		}
		calendars = append(calendars, contracts.CardCalendarDTO{
			Calendar: toCalendarDTO(cc.Calendar),
			Plans:    plans,
		})
	}
	return contracts.CardDetailsResponse{
		Card:          toCardDTO(d.Card),
		Owner:         toUserDTO(d.Owner),
		Calendars:     calendars,
		FollowerCount: d.FollowerCount,
		IsFollowing:   d.IsFollowing,
	}
}

func toCardSummaryDTO(s application.CardSummary) contracts.CardSummaryDTO {
	calendars := make([]contracts.CalendarDTO, 0, len(s.Calendars))
	for _, c := range s.Calendars {
		calendars = append(calendars, toCalendarDTO(c))
	}
	return contracts.CardSummaryDTO{
		Card:          toCardDTO(s.Card),
		FollowerCount: s.FollowerCount,
		Calendars:     calendars,
		IsFollowing:   s.IsFollowing,
	}
}

func toCardSummaryDTOs(summaries []application.CardSummary) []contracts.CardSummaryDTO {
	out := make([]contracts.CardSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toCardSummaryDTO(s))
	}
	return out
}

func toConnectionRequestDTO(d application.ConnectionRequestDetails) contracts.ConnectionRequestDTO {
	return contracts.ConnectionRequestDTO{
		RequestID: d.Request.RequestID.String(),
		Status:    d.Request.Status,
		From:      toUserDTO(d.From),
		CreatedAt: formatTime(d.Request.CreatedAt),
	}
}

func toNotificationDTO(n domain.Notification) contracts.NotificationDTO {
	return contracts.NotificationDTO{
		NotificationID: n.NotificationID.String(),
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Data:           n.Data,
		Read:           n.IsRead(),
		CreatedAt:      formatTime(n.CreatedAt),
	}
}

func toProfilePlanDTO(p application.ProfilePlan) contracts.ProfilePlanDTO {
	return contracts.ProfilePlanDTO{
		Plan:             toPlanDTO(p.Plan),
		ParticipantCount: p.ParticipantCount,
		CalendarName:     p.CalendarName,
		CalendarColor:    p.CalendarColor,
		CardName:         p.CardName,
	}
}

func toProfilePlanDTOs(plans []application.ProfilePlan) []contracts.ProfilePlanDTO {
	out := make([]contracts.ProfilePlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, toProfilePlanDTO(p))
	}
	return out
}
