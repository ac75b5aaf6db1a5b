package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planora/planora/internal/contracts"
)

func (h *Handler) listCalendars(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	summaries, err := h.service.ListCalendars(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "list_calendars", err)
		return
	}

	items := make([]contracts.CalendarDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, toCalendarSummaryDTO(s))
	}
	writeSuccess(w, http.StatusOK, map[string]any{"calendars": items})
}

func (h *Handler) addCalendarManager(w http.ResponseWriter, r *http.Request) {
	calendarID, err := uuid.Parse(chi.URLParam(r, "calendar_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid calendar id", requestIDFromContext(r.Context()))
		return
	}
	var req contracts.AddManagerRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_calendar_manager", err)
		return
	}

	actor := actorFromContext(r.Context())
	manager, err := h.service.AddCalendarManager(r.Context(), actor, calendarID, req.Email)
	if err != nil {
		writeMappedError(r.Context(), w, "add_calendar_manager", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"manager": toUserDTO(manager)})
}

func (h *Handler) listCalendarManagers(w http.ResponseWriter, r *http.Request) {
	calendarID, err := uuid.Parse(chi.URLParam(r, "calendar_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid calendar id", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	managers, err := h.service.ListCalendarManagers(r.Context(), actor, calendarID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_calendar_managers", err)
		return
	}

	items := make([]contracts.UserDTO, 0, len(managers))
	for _, m := range managers {
		items = append(items, toUserDTO(m))
	}
	writeSuccess(w, http.StatusOK, map[string]any{"managers": items})
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	events, err := h.service.ListEvents(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "list_events", err)
		return
	}

	items := make([]contracts.EventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, toEventDTO(e))
	}
	writeSuccess(w, http.StatusOK, map[string]any{"events": items})
}
