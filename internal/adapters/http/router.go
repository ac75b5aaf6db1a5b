package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers the HTTP routes and middleware stack.
// Centralizing routes here keeps auth and error behavior consistent
// across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Post("/auth/register", handler.register)
	r.Post("/auth/login", handler.login)
	r.With(handler.authMiddleware).Post("/auth/logout", handler.logout)

	r.Group(func(r chi.Router) {
		r.Use(handler.optionalAuthMiddleware)
		r.Get("/plans/{plan_id}", handler.getPlan)
		r.Get("/professional/{card_id}", handler.getCard)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.authMiddleware)

		r.Get("/calendars", handler.listCalendars)
		r.Post("/calendars/{calendar_id}/managers", handler.addCalendarManager)
		r.Get("/calendars/{calendar_id}/managers", handler.listCalendarManagers)

		r.Get("/events", handler.listEvents)

		r.Post("/plans", handler.createPlan)
		r.Post("/plans/create", handler.quickCreatePlan)
		r.Post("/plans/participate", handler.participate)
		r.Post("/plans/manage-participation", handler.manageParticipation)

		r.Post("/professional/create", handler.createCard)
		r.Post("/professional/follow", handler.followCard)
		r.Post("/professional/unfollow", handler.unfollowCard)
		r.Get("/professional/managed", handler.listManagedCards)
		r.Get("/professional/followed", handler.listFollowedCards)
		r.Post("/professionals/{card_id}/managers", handler.addCardManager)
		r.Get("/professionals/{card_id}/managers", handler.listCardManagers)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", handler.getProfile)
			r.Get("/plans", handler.getProfilePlans)
			r.Get("/cards", handler.getProfileCards)
			r.Post("/connections", handler.requestConnection)
			r.Get("/connections", handler.listConnections)
			r.Get("/connections/requests", handler.listConnectionRequests)
			r.Post("/connections/requests/{request_id}/accept", handler.acceptConnectionRequest)
			r.Post("/connections/requests/{request_id}/reject", handler.rejectConnectionRequest)
			r.Get("/notifications", handler.listNotifications)
			r.Post("/notifications/{notification_id}/read", handler.markNotificationRead)
		})
	})

	return r
}
