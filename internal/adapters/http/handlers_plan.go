package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/contracts"
	"github.com/planora/planora/internal/domain"
)

func planInputFromRequest(req contracts.CreatePlanRequest) (application.CreatePlanInput, error) {
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return application.CreatePlanInput{}, errors.New("start_date must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return application.CreatePlanInput{}, errors.New("end_date must be RFC3339")
	}
	var calendarID uuid.UUID
	if req.CalendarID != "" {
		calendarID, err = uuid.Parse(req.CalendarID)
		if err != nil {
			return application.CreatePlanInput{}, errors.New("calendar_id must be a uuid")
		}
	}
	return application.CreatePlanInput{
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       start,
		EndDate:         end,
		Location:        req.Location,
		OnlineLink:      req.OnlineLink,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		Tags:            req.Tags,
		Visibility:      req.Visibility,
		CalendarID:      calendarID,
	}, nil
}

// createPlan is the full creation path: explicit visibility and delegated
// managers may publish on calendars they manage.
func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreatePlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_plan", err)
		return
	}
	input, err := planInputFromRequest(req)
	if err != nil {
		writeValidationError(r.Context(), w, "create_plan", err)
		return
	}
	input.AllowManagers = true

	actor := actorFromContext(r.Context())
	plan, err := h.service.CreatePlan(r.Context(), actor, input)
	if err != nil {
		writeMappedError(r.Context(), w, "create_plan", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"plan": toPlanDTO(plan)})
}

// quickCreatePlan is the simplified creation path. Visibility is pinned to
// PUBLIC and manager delegation does not apply.
func (h *Handler) quickCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreatePlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "quick_create_plan", err)
		return
	}
	input, err := planInputFromRequest(req)
	if err != nil {
		writeValidationError(r.Context(), w, "quick_create_plan", err)
		return
	}
	input.Visibility = domain.VisibilityPublic
	input.AllowManagers = false

	actor := actorFromContext(r.Context())
	plan, err := h.service.CreatePlan(r.Context(), actor, input)
	if err != nil {
		writeMappedError(r.Context(), w, "quick_create_plan", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"plan": toPlanDTO(plan)})
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "plan_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid plan id", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	details, err := h.service.GetPlan(r.Context(), actor, planID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_plan", err)
		return
	}
	writeSuccess(w, http.StatusOK, toPlanDetailsDTO(details))
}

func (h *Handler) participate(w http.ResponseWriter, r *http.Request) {
	var req contracts.ParticipateRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "participate", err)
		return
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "plan_id must be a uuid", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	row, err := h.service.RequestParticipation(r.Context(), actor, planID)
	if err != nil {
		writeMappedError(r.Context(), w, "participate", err)
		return
	}
	writeSuccess(w, http.StatusCreated, contracts.ParticipateResponse{
		ParticipationID: row.ParticipantID.String(),
		Status:          row.Status,
	})
}

func (h *Handler) manageParticipation(w http.ResponseWriter, r *http.Request) {
	var req contracts.ManageParticipationRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "manage_participation", err)
		return
	}
	participationID, err := uuid.Parse(req.ParticipationID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "participation_id must be a uuid", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	row, err := h.service.ManageParticipation(r.Context(), actor, application.ManageParticipationInput{
		ParticipationID: participationID,
		Action:          req.Action,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "manage_participation", err)
		return
	}
	writeSuccess(w, http.StatusOK, contracts.ManageParticipationResponse{
		ParticipationID: row.ParticipantID.String(),
		Status:          row.Status,
	})
}
