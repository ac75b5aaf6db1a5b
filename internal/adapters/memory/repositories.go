// Package memory provides map-backed implementations of the repository
// ports. They back the unit tests and local development without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/internal/domain"
)

// Repositories bundles every in-memory port implementation. All repos share
// one store so cross-entity queries (feeds, visibility) see a single state.
type Repositories struct {
	Users              *UserRepository
	Calendars          *CalendarRepository
	CalendarManagers   *CalendarManagerRepository
	Plans              *PlanRepository
	Participants       *ParticipantRepository
	Cards              *CardRepository
	Followers          *FollowerRepository
	CardManagers       *CardManagerRepository
	Connections        *ConnectionRepository
	ConnectionRequests *ConnectionRequestRepository
	Notifications      *NotificationRepository
}

type store struct {
	mu sync.Mutex

	users              map[uuid.UUID]domain.User
	calendars          map[uuid.UUID]domain.Calendar
	calendarManagers   map[uuid.UUID]domain.CalendarManager
	plans              map[uuid.UUID]domain.Plan
	participants       map[uuid.UUID]domain.PlanParticipant
	cards              map[uuid.UUID]domain.ProfessionalCard
	followers          map[uuid.UUID]domain.Follower
	followings         map[uuid.UUID]domain.Following
	cardManagers       map[uuid.UUID]domain.ProfessionalCardManager
	connections        map[uuid.UUID]domain.Connection
	connectionRequests map[uuid.UUID]domain.ConnectionRequest
	notifications      map[uuid.UUID]domain.Notification
}

func NewRepositories() *Repositories {
	s := &store{
		users:              map[uuid.UUID]domain.User{},
		calendars:          map[uuid.UUID]domain.Calendar{},
		calendarManagers:   map[uuid.UUID]domain.CalendarManager{},
		plans:              map[uuid.UUID]domain.Plan{},
		participants:       map[uuid.UUID]domain.PlanParticipant{},
		cards:              map[uuid.UUID]domain.ProfessionalCard{},
		followers:          map[uuid.UUID]domain.Follower{},
		followings:         map[uuid.UUID]domain.Following{},
		cardManagers:       map[uuid.UUID]domain.ProfessionalCardManager{},
		connections:        map[uuid.UUID]domain.Connection{},
		connectionRequests: map[uuid.UUID]domain.ConnectionRequest{},
		notifications:      map[uuid.UUID]domain.Notification{},
	}
	return &Repositories{
		Users:              &UserRepository{s: s},
		Calendars:          &CalendarRepository{s: s},
		CalendarManagers:   &CalendarManagerRepository{s: s},
		Plans:              &PlanRepository{s: s},
		Participants:       &ParticipantRepository{s: s},
		Cards:              &CardRepository{s: s},
		Followers:          &FollowerRepository{s: s},
		CardManagers:       &CardManagerRepository{s: s},
		Connections:        &ConnectionRepository{s: s},
		ConnectionRequests: &ConnectionRequestRepository{s: s},
		Notifications:      &NotificationRepository{s: s},
	}
}

func (s *store) followedCardIDs(userID uuid.UUID) map[uuid.UUID]bool {
	out := map[uuid.UUID]bool{}
	for _, f := range s.followings {
		if f.UserID == userID {
			out[f.CardID] = true
		}
	}
	return out
}

type UserRepository struct {
	s *store
}

func (r *UserRepository) CreateWithCalendarTx(_ context.Context, user domain.User, personal domain.Calendar) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.User{}, domain.ErrConflict
		}
	}
	r.s.users[user.UserID] = user
	r.s.calendars[personal.CalendarID] = personal
	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

type CalendarRepository struct {
	s *store
}

func (r *CalendarRepository) GetByID(_ context.Context, calendarID uuid.UUID) (domain.Calendar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.calendars[calendarID]
	if !ok {
		return domain.Calendar{}, domain.ErrNotFound
	}
	return c, nil
}

func (r *CalendarRepository) ListVisible(_ context.Context, userID uuid.UUID) ([]domain.Calendar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	followed := r.s.followedCardIDs(userID)
	var out []domain.Calendar
	for _, c := range r.s.calendars {
		if c.OwnerID == userID {
			out = append(out, c)
			continue
		}
		if c.IsPublic && c.ProfessionalCardID != nil && followed[*c.ProfessionalCardID] {
			out = append(out, c)
		}
	}
	sortCalendarsNewestFirst(out)
	return out, nil
}

func (r *CalendarRepository) ListByOwner(_ context.Context, userID uuid.UUID) ([]domain.Calendar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Calendar
	for _, c := range r.s.calendars {
		if c.OwnerID == userID {
			out = append(out, c)
		}
	}
	sortCalendarsNewestFirst(out)
	return out, nil
}

func (r *CalendarRepository) ListByCard(_ context.Context, cardID uuid.UUID) ([]domain.Calendar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Calendar
	for _, c := range r.s.calendars {
		if c.ProfessionalCardID != nil && *c.ProfessionalCardID == cardID {
			out = append(out, c)
		}
	}
	sortCalendarsNewestFirst(out)
	return out, nil
}

func (r *CalendarRepository) ListPublicByCard(_ context.Context, cardID uuid.UUID) ([]domain.Calendar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Calendar
	for _, c := range r.s.calendars {
		if c.IsPublic && c.ProfessionalCardID != nil && *c.ProfessionalCardID == cardID {
			out = append(out, c)
		}
	}
	sortCalendarsNewestFirst(out)
	return out, nil
}

func sortCalendarsNewestFirst(rows []domain.Calendar) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
}

type CalendarManagerRepository struct {
	s *store
}

func (r *CalendarManagerRepository) Create(_ context.Context, row domain.CalendarManager) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.calendarManagers {
		if m.CalendarID == row.CalendarID && m.UserID == row.UserID {
			return domain.ErrConflict
		}
	}
	r.s.calendarManagers[row.ManagerID] = row
	return nil
}

func (r *CalendarManagerRepository) Exists(_ context.Context, calendarID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.calendarManagers {
		if m.CalendarID == calendarID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *CalendarManagerRepository) ListByCalendar(_ context.Context, calendarID uuid.UUID) ([]domain.CalendarManager, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.CalendarManager
	for _, m := range r.s.calendarManagers {
		if m.CalendarID == calendarID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type PlanRepository struct {
	s *store
}

func (r *PlanRepository) Create(_ context.Context, row domain.Plan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.plans[row.PlanID]; ok {
		return domain.ErrConflict
	}
	r.s.plans[row.PlanID] = row
	return nil
}

func (r *PlanRepository) GetByID(_ context.Context, planID uuid.UUID) (domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.plans[planID]
	if !ok {
		return domain.Plan{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *PlanRepository) ListVisibleTo(_ context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	approved := map[uuid.UUID]bool{}
	for _, p := range r.s.participants {
		if p.UserID == userID && p.Status == domain.ParticipantStatusApproved {
			approved[p.PlanID] = true
		}
	}
	followed := r.s.followedCardIDs(userID)
	followedCalendars := map[uuid.UUID]bool{}
	for _, c := range r.s.calendars {
		if c.IsPublic && c.ProfessionalCardID != nil && followed[*c.ProfessionalCardID] {
			followedCalendars[c.CalendarID] = true
		}
	}

	var out []domain.Plan
	for _, p := range r.s.plans {
		switch {
		case p.OwnerID == userID:
			out = append(out, p)
		case approved[p.PlanID]:
			out = append(out, p)
		case p.Visibility == domain.VisibilityPublic && followedCalendars[p.CalendarID]:
			out = append(out, p)
		}
	}
	sortPlansByStart(out)
	return out, nil
}

func (r *PlanRepository) ListByOwner(_ context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Plan
	for _, p := range r.s.plans {
		if p.OwnerID == userID {
			out = append(out, p)
		}
	}
	sortPlansByStart(out)
	return out, nil
}

func (r *PlanRepository) ListByApprovedParticipant(_ context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Plan
	for _, part := range r.s.participants {
		if part.UserID != userID || part.Status != domain.ParticipantStatusApproved {
			continue
		}
		if p, ok := r.s.plans[part.PlanID]; ok {
			out = append(out, p)
		}
	}
	sortPlansByStart(out)
	return out, nil
}

func (r *PlanRepository) ListUpcomingPublicByCalendar(_ context.Context, calendarID uuid.UUID, now time.Time) ([]domain.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Plan
	for _, p := range r.s.plans {
		if p.CalendarID == calendarID && p.Visibility == domain.VisibilityPublic && p.EndDate.After(now) {
			out = append(out, p)
		}
	}
	sortPlansByStart(out)
	return out, nil
}

func sortPlansByStart(rows []domain.Plan) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartDate.Before(rows[j].StartDate) })
}

type ParticipantRepository struct {
	s *store
}

func (r *ParticipantRepository) Create(_ context.Context, row domain.PlanParticipant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.participants {
		if p.PlanID == row.PlanID && p.UserID == row.UserID {
			return domain.ErrConflict
		}
	}
	r.s.participants[row.ParticipantID] = row
	return nil
}

func (r *ParticipantRepository) GetByID(_ context.Context, participantID uuid.UUID) (domain.PlanParticipant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[participantID]
	if !ok {
		return domain.PlanParticipant{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *ParticipantRepository) GetByPlanUser(_ context.Context, planID, userID uuid.UUID) (domain.PlanParticipant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.participants {
		if p.PlanID == planID && p.UserID == userID {
			return p, nil
		}
	}
	return domain.PlanParticipant{}, domain.ErrNotFound
}

func (r *ParticipantRepository) ListByPlan(_ context.Context, planID uuid.UUID) ([]domain.PlanParticipant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.PlanParticipant
	for _, p := range r.s.participants {
		if p.PlanID == planID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ParticipantRepository) CountApproved(_ context.Context, planID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.countApprovedLocked(planID), nil
}

func (r *ParticipantRepository) countApprovedLocked(planID uuid.UUID) int {
	count := 0
	for _, p := range r.s.participants {
		if p.PlanID == planID && p.Status == domain.ParticipantStatusApproved {
			count++
		}
	}
	return count
}

func (r *ParticipantRepository) CountByPlan(_ context.Context, planID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, p := range r.s.participants {
		if p.PlanID == planID {
			count++
		}
	}
	return count, nil
}

func (r *ParticipantRepository) Decide(_ context.Context, participantID uuid.UUID, status string, capacity int, decidedAt time.Time) (domain.PlanParticipant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[participantID]
	if !ok {
		return domain.PlanParticipant{}, domain.ErrNotFound
	}
	if p.Status != domain.ParticipantStatusPending {
		return domain.PlanParticipant{}, domain.ErrConflict
	}
	if status == domain.ParticipantStatusApproved && capacity > 0 {
		if r.countApprovedLocked(p.PlanID) >= capacity {
			return domain.PlanParticipant{}, domain.ErrCapacityReached
		}
	}
	p.Status = status
	p.UpdatedAt = decidedAt
	r.s.participants[participantID] = p
	return p, nil
}

type CardRepository struct {
	s *store
}

func (r *CardRepository) CreateWithCalendarTx(_ context.Context, card domain.ProfessionalCard, calendar domain.Calendar) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cards[card.CardID]; ok {
		return domain.ErrConflict
	}
	r.s.cards[card.CardID] = card
	r.s.calendars[calendar.CalendarID] = calendar
	return nil
}

func (r *CardRepository) GetByID(_ context.Context, cardID uuid.UUID) (domain.ProfessionalCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.cards[cardID]
	if !ok {
		return domain.ProfessionalCard{}, domain.ErrNotFound
	}
	return c, nil
}

func (r *CardRepository) ListByOwner(_ context.Context, userID uuid.UUID) ([]domain.ProfessionalCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.ProfessionalCard
	for _, c := range r.s.cards {
		if c.OwnerID == userID {
			out = append(out, c)
		}
	}
	sortCardsNewestFirst(out)
	return out, nil
}

func (r *CardRepository) ListFollowedBy(_ context.Context, userID uuid.UUID) ([]domain.ProfessionalCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	followed := r.s.followedCardIDs(userID)
	var out []domain.ProfessionalCard
	for id := range followed {
		if c, ok := r.s.cards[id]; ok {
			out = append(out, c)
		}
	}
	sortCardsNewestFirst(out)
	return out, nil
}

func sortCardsNewestFirst(rows []domain.ProfessionalCard) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
}

type FollowerRepository struct {
	s *store
}

func (r *FollowerRepository) CreatePairTx(_ context.Context, follower domain.Follower, following domain.Following) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.followers {
		if f.UserID == follower.UserID && f.CardID == follower.CardID {
			return domain.ErrConflict
		}
	}
	r.s.followers[follower.FollowerID] = follower
	r.s.followings[following.FollowingID] = following
	return nil
}

func (r *FollowerRepository) DeletePairTx(_ context.Context, userID, cardID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	found := false
	for id, f := range r.s.followers {
		if f.UserID == userID && f.CardID == cardID {
			delete(r.s.followers, id)
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	for id, f := range r.s.followings {
		if f.UserID == userID && f.CardID == cardID {
			delete(r.s.followings, id)
		}
	}
	return nil
}

func (r *FollowerRepository) Get(_ context.Context, userID, cardID uuid.UUID) (domain.Follower, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.followers {
		if f.UserID == userID && f.CardID == cardID {
			return f, nil
		}
	}
	return domain.Follower{}, domain.ErrNotFound
}

func (r *FollowerRepository) CountByCard(_ context.Context, cardID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, f := range r.s.followers {
		if f.CardID == cardID {
			count++
		}
	}
	return count, nil
}

func (r *FollowerRepository) CountFollowedBy(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, f := range r.s.followings {
		if f.UserID == userID {
			count++
		}
	}
	return count, nil
}

type CardManagerRepository struct {
	s *store
}

func (r *CardManagerRepository) Create(_ context.Context, row domain.ProfessionalCardManager) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.cardManagers {
		if m.CardID == row.CardID && m.UserID == row.UserID {
			return domain.ErrConflict
		}
	}
	r.s.cardManagers[row.ManagerID] = row
	return nil
}

func (r *CardManagerRepository) Exists(_ context.Context, cardID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.cardManagers {
		if m.CardID == cardID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *CardManagerRepository) ListByCard(_ context.Context, cardID uuid.UUID) ([]domain.ProfessionalCardManager, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.ProfessionalCardManager
	for _, m := range r.s.cardManagers {
		if m.CardID == cardID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type ConnectionRepository struct {
	s *store
}

func (r *ConnectionRepository) ListEdges(_ context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Connection
	for _, c := range r.s.connections {
		if c.UserID == userID || c.ConnectedUserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ConnectionRepository) Exists(_ context.Context, userID, otherID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.edgeExistsLocked(userID, otherID), nil
}

func (s *store) edgeExistsLocked(userID, otherID uuid.UUID) bool {
	for _, c := range s.connections {
		if (c.UserID == userID && c.ConnectedUserID == otherID) ||
			(c.UserID == otherID && c.ConnectedUserID == userID) {
			return true
		}
	}
	return false
}

func (r *ConnectionRepository) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, c := range r.s.connections {
		if c.UserID == userID || c.ConnectedUserID == userID {
			count++
		}
	}
	return count, nil
}

type ConnectionRequestRepository struct {
	s *store
}

func (r *ConnectionRequestRepository) CreateWithNotificationTx(_ context.Context, req domain.ConnectionRequest, notif domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.connectionRequests[req.RequestID]; ok {
		return domain.ErrConflict
	}
	r.s.connectionRequests[req.RequestID] = req
	r.s.notifications[notif.NotificationID] = notif
	return nil
}

func (r *ConnectionRequestRepository) GetByID(_ context.Context, requestID uuid.UUID) (domain.ConnectionRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.connectionRequests[requestID]
	if !ok {
		return domain.ConnectionRequest{}, domain.ErrNotFound
	}
	return req, nil
}

func (r *ConnectionRequestRepository) ListPendingTo(_ context.Context, userID uuid.UUID) ([]domain.ConnectionRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.ConnectionRequest
	for _, req := range r.s.connectionRequests {
		if req.ToID == userID && req.Status == domain.ConnectionRequestPending {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ConnectionRequestRepository) ExistsPendingBetween(_ context.Context, userID, otherID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, req := range r.s.connectionRequests {
		if req.Status != domain.ConnectionRequestPending {
			continue
		}
		if (req.FromID == userID && req.ToID == otherID) ||
			(req.FromID == otherID && req.ToID == userID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ConnectionRequestRepository) AcceptTx(_ context.Context, requestID uuid.UUID, edge domain.Connection, notif domain.Notification, decidedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.connectionRequests[requestID]
	if !ok {
		return domain.ErrNotFound
	}
	if req.Status != domain.ConnectionRequestPending {
		return domain.ErrConflict
	}
	if r.s.edgeExistsLocked(edge.UserID, edge.ConnectedUserID) {
		return domain.ErrConflict
	}
	req.Status = domain.ConnectionRequestAccepted
	req.UpdatedAt = decidedAt
	r.s.connectionRequests[requestID] = req
	r.s.connections[edge.ConnectionID] = edge
	r.s.notifications[notif.NotificationID] = notif
	return nil
}

func (r *ConnectionRequestRepository) RejectTx(_ context.Context, requestID uuid.UUID, notif domain.Notification, decidedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.connectionRequests[requestID]
	if !ok {
		return domain.ErrNotFound
	}
	if req.Status != domain.ConnectionRequestPending {
		return domain.ErrConflict
	}
	req.Status = domain.ConnectionRequestRejected
	req.UpdatedAt = decidedAt
	r.s.connectionRequests[requestID] = req
	r.s.notifications[notif.NotificationID] = notif
	return nil
}

type NotificationRepository struct {
	s *store
}

func (r *NotificationRepository) Create(_ context.Context, row domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications[row.NotificationID] = row
	return nil
}

func (r *NotificationRepository) GetByID(_ context.Context, notificationID uuid.UUID) (domain.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[notificationID]
	if !ok {
		return domain.Notification{}, domain.ErrNotFound
	}
	return n, nil
}

func (r *NotificationRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NotificationRepository) Update(_ context.Context, row domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notifications[row.NotificationID]; !ok {
		return domain.ErrNotFound
	}
	r.s.notifications[row.NotificationID] = row
	return nil
}
