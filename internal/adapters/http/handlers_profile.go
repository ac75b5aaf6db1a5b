package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planora/planora/internal/contracts"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	summary, err := h.service.GetProfile(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "get_profile", err)
		return
	}
	writeSuccess(w, http.StatusOK, contracts.ProfileResponse{
		User:              toAccountDTO(summary.User),
		CalendarCount:     summary.CalendarCount,
		PlanCount:         summary.PlanCount,
		CardCount:         summary.CardCount,
		ConnectionCount:   summary.ConnectionCount,
		FollowedCardCount: summary.FollowedCardCount,
	})
}

func (h *Handler) getProfilePlans(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	plans, err := h.service.GetProfilePlans(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "get_profile_plans", err)
		return
	}
	writeSuccess(w, http.StatusOK, contracts.ProfilePlansResponse{
		Created:       toProfilePlanDTOs(plans.Created),
		Participating: toProfilePlanDTOs(plans.Participating),
	})
}

func (h *Handler) getProfileCards(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	cards, err := h.service.GetProfileCards(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "get_profile_cards", err)
		return
	}
	writeSuccess(w, http.StatusOK, contracts.ProfileCardsResponse{
		Managed:  toCardSummaryDTOs(cards.Managed),
		Followed: toCardSummaryDTOs(cards.Followed),
	})
}

func (h *Handler) requestConnection(w http.ResponseWriter, r *http.Request) {
	var req contracts.ConnectionRequestRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "request_connection", err)
		return
	}

	actor := actorFromContext(r.Context())
	created, err := h.service.RequestConnection(r.Context(), actor, req.Email)
	if err != nil {
		writeMappedError(r.Context(), w, "request_connection", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{
		"request_id": created.RequestID.String(),
		"status":     created.Status,
	})
}

func (h *Handler) listConnections(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	peers, err := h.service.ListConnections(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "list_connections", err)
		return
	}

	items := make([]contracts.UserDTO, 0, len(peers))
	for _, p := range peers {
		items = append(items, toUserDTO(p))
	}
	writeSuccess(w, http.StatusOK, map[string]any{"connections": items})
}

func (h *Handler) listConnectionRequests(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	requests, err := h.service.ListConnectionRequests(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "list_connection_requests", err)
		return
	}

	items := make([]contracts.ConnectionRequestDTO, 0, len(requests))
	for _, req := range requests {
		items = append(items, toConnectionRequestDTO(req))
	}
	writeSuccess(w, http.StatusOK, map[string]any{"requests": items})
}

func (h *Handler) acceptConnectionRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "request_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid request id", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	if err := h.service.AcceptConnectionRequest(r.Context(), actor, requestID); err != nil {
		writeMappedError(r.Context(), w, "accept_connection_request", err)
		return
	}
	writeMessage(w, http.StatusOK, "connection request accepted")
}

func (h *Handler) rejectConnectionRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "request_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid request id", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	if err := h.service.RejectConnectionRequest(r.Context(), actor, requestID); err != nil {
		writeMappedError(r.Context(), w, "reject_connection_request", err)
		return
	}
	writeMessage(w, http.StatusOK, "connection request rejected")
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	notifications, err := h.service.ListNotifications(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "list_notifications", err)
		return
	}

	items := make([]contracts.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, toNotificationDTO(n))
	}
	writeSuccess(w, http.StatusOK, map[string]any{"notifications": items})
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := uuid.Parse(chi.URLParam(r, "notification_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid notification id", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	notif, err := h.service.MarkNotificationRead(r.Context(), actor, notificationID)
	if err != nil {
		writeMappedError(r.Context(), w, "mark_notification_read", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"notification": toNotificationDTO(notif)})
}
