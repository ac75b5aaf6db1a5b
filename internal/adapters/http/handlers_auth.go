package http

import (
	"net/http"

	"github.com/planora/planora/internal/application"
	"github.com/planora/planora/internal/contracts"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req contracts.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	res, err := h.service.Register(r.Context(), application.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}

	writeSuccess(w, http.StatusCreated, contracts.RegisterResponse{
		UserID:   res.User.UserID.String(),
		Username: res.User.Username,
		Email:    res.User.Email,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req contracts.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	res, err := h.service.Login(r.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}

	writeSuccess(w, http.StatusOK, contracts.LoginResponse{
		Token:     res.Token,
		ExpiresAt: formatTime(res.ExpiresAt),
		User:      toAccountDTO(res.User),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", requestIDFromContext(r.Context()))
		return
	}
	if err := h.service.RevokeSession(r.Context(), claims); err != nil {
		writeMappedError(r.Context(), w, "logout", err)
		return
	}
	writeMessage(w, http.StatusOK, "logged out")
}
