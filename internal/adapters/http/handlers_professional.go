package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/contracts"
)

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreateCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_card", err)
		return
	}

	actor := actorFromContext(r.Context())
	res, err := h.service.CreateCard(r.Context(), actor, application.CreateCardInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Instagram:   req.Instagram,
		Tags:        req.Tags,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "create_card", err)
		return
	}
	writeSuccess(w, http.StatusCreated, contracts.CreateCardResponse{
		Card:     toCardDTO(res.Card),
		Calendar: toCalendarDTO(res.Calendar),
	})
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "card_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid card id", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	details, err := h.service.GetCard(r.Context(), actor, cardID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_card", err)
		return
	}
	writeSuccess(w, http.StatusOK, toCardDetailsDTO(details))
}

func (h *Handler) followCard(w http.ResponseWriter, r *http.Request) {
	var req contracts.FollowRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "follow_card", err)
		return
	}
	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "card_id must be a uuid", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	if err := h.service.Follow(r.Context(), actor, cardID); err != nil {
		writeMappedError(r.Context(), w, "follow_card", err)
		return
	}
	writeMessage(w, http.StatusCreated, "card followed")
}

func (h *Handler) unfollowCard(w http.ResponseWriter, r *http.Request) {
	var req contracts.FollowRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "unfollow_card", err)
		return
	}
	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "card_id must be a uuid", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	if err := h.service.Unfollow(r.Context(), actor, cardID); err != nil {
		writeMappedError(r.Context(), w, "unfollow_card", err)
		return
	}
	writeMessage(w, http.StatusOK, "card unfollowed")
}

func (h *Handler) listManagedCards(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	summaries, err := h.service.ListManagedCards(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "list_managed_cards", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"cards": toCardSummaryDTOs(summaries)})
}

func (h *Handler) listFollowedCards(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	summaries, err := h.service.ListFollowedCards(r.Context(), actor)
	if err != nil {
		writeMappedError(r.Context(), w, "list_followed_cards", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"cards": toCardSummaryDTOs(summaries)})
}

func (h *Handler) addCardManager(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "card_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid card id", requestIDFromContext(r.Context()))
		return
	}
	var req contracts.AddManagerRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_card_manager", err)
		return
	}

	actor := actorFromContext(r.Context())
	manager, err := h.service.AddCardManager(r.Context(), actor, cardID, req.Email)
	if err != nil {
		writeMappedError(r.Context(), w, "add_card_manager", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"manager": toUserDTO(manager)})
}

func (h *Handler) listCardManagers(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "card_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid card id", requestIDFromContext(r.Context()))
		return
	}

	actor := actorFromContext(r.Context())
	managers, err := h.service.ListCardManagers(r.Context(), actor, cardID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_card_managers", err)
		return
	}

	items := make([]contracts.UserDTO, 0, len(managers))
	for _, m := range managers {
		items = append(items, toUserDTO(m))
	}
	writeSuccess(w, http.StatusOK, map[string]any{"managers": items})
}
