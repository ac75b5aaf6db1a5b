package contracts

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorPayload struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Status string       `json:"status"`
	Error  ErrorPayload `json:"error"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	User      UserDTO `json:"user"`
}

type UserDTO struct {
	UserID   string `json:"id"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
}

type CalendarDTO struct {
	CalendarID         string `json:"calendar_id"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	IsPublic           bool   `json:"is_public"`
	Color              string `json:"color"`
	OwnerID            string `json:"owner_id"`
	ProfessionalCardID string `json:"professional_card_id,omitempty"`
	CardName           string `json:"card_name,omitempty"`
}

type CreatePlanRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Location        string   `json:"location,omitempty"`
	OnlineLink      string   `json:"online_link,omitempty"`
	MaxParticipants int      `json:"max_participants,omitempty"`
	Price           float64  `json:"price,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Visibility      string   `json:"visibility,omitempty"`
	CalendarID      string   `json:"calendar_id"`
}

type PlanDTO struct {
	PlanID          string   `json:"plan_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Location        string   `json:"location,omitempty"`
	OnlineLink      string   `json:"online_link,omitempty"`
	MaxParticipants int      `json:"max_participants"`
	Price           float64  `json:"price"`
	Tags            []string `json:"tags,omitempty"`
	Visibility      string   `json:"visibility"`
	OwnerID         string   `json:"owner_id"`
	CalendarID      string   `json:"calendar_id"`
	CreatedAt       string   `json:"created_at"`
}

type ParticipantDTO struct {
	ParticipationID string  `json:"participation_id"`
	Status          string  `json:"status"`
	User            UserDTO `json:"user"`
	RequestedAt     string  `json:"requested_at"`
}

type PlanDetailsResponse struct {
	Plan         PlanDTO          `json:"plan"`
	Owner        UserDTO          `json:"owner"`
	Participants []ParticipantDTO `json:"participants"`
}

type EventDTO struct {
	PlanID       string `json:"plan_id"`
	Title        string `json:"title"`
	Start        string `json:"start"`
	End          string `json:"end"`
	CalendarID   string `json:"calendar_id"`
	CalendarName string `json:"calendar_name"`
	Color        string `json:"color"`
}

type ParticipateRequest struct {
	PlanID string `json:"plan_id"`
}

type ParticipateResponse struct {
	ParticipationID string `json:"participation_id"`
	Status          string `json:"status"`
}

type ManageParticipationRequest struct {
	ParticipationID string `json:"participation_id"`
	Action          string `json:"action"`
}

type ManageParticipationResponse struct {
	ParticipationID string `json:"participation_id"`
	Status          string `json:"status"`
}

type CreateCardRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	Instagram   string   `json:"instagram,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type CardDTO struct {
	CardID      string   `json:"card_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	Instagram   string   `json:"instagram,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	OwnerID     string   `json:"owner_id"`
	CreatedAt   string   `json:"created_at"`
}

type CreateCardResponse struct {
	Card     CardDTO     `json:"card"`
	Calendar CalendarDTO `json:"calendar"`
}

type CardCalendarDTO struct {
	Calendar CalendarDTO `json:"calendar"`
	Plans    []PlanDTO   `json:"plans"`
}

type CardDetailsResponse struct {
	Card          CardDTO           `json:"card"`
	Owner         UserDTO           `json:"owner"`
	Calendars     []CardCalendarDTO `json:"calendars"`
	FollowerCount int               `json:"follower_count"`
	IsFollowing   bool              `json:"is_following"`
}

type CardSummaryDTO struct {
	Card          CardDTO       `json:"card"`
	FollowerCount int           `json:"follower_count"`
	Calendars     []CalendarDTO `json:"calendars,omitempty"`
	IsFollowing   bool          `json:"is_following"`
}

type FollowRequest struct {
	CardID string `json:"card_id"`
}

type AddManagerRequest struct {
	Email string `json:"email"`
}

type ConnectionRequestRequest struct {
	Email string `json:"email"`
}

type ConnectionRequestDTO struct {
	RequestID string  `json:"request_id"`
	Status    string  `json:"status"`
	From      UserDTO `json:"from"`
	CreatedAt string  `json:"created_at"`
}

type NotificationDTO struct {
	NotificationID string         `json:"notification_id"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Data           map[string]any `json:"data,omitempty"`
	Read           bool           `json:"read"`
	CreatedAt      string         `json:"created_at"`
}

type ProfileResponse struct {
	User              UserDTO `json:"user"`
	CalendarCount     int     `json:"calendar_count"`
	PlanCount         int     `json:"plan_count"`
	CardCount         int     `json:"card_count"`
	ConnectionCount   int     `json:"connection_count"`
	FollowedCardCount int     `json:"followed_card_count"`
}

type ProfilePlanDTO struct {
	Plan             PlanDTO `json:"plan"`
	ParticipantCount int     `json:"participant_count"`
	CalendarName     string  `json:"calendar_name,omitempty"`
	CalendarColor    string  `json:"calendar_color,omitempty"`
	CardName         string  `json:"card_name,omitempty"`
}

type ProfilePlansResponse struct {
	Created       []ProfilePlanDTO `json:"created"`
	Participating []ProfilePlanDTO `json:"participating"`
}

type ProfileCardsResponse struct {
	Managed  []CardSummaryDTO `json:"managed"`
	Followed []CardSummaryDTO `json:"followed"`
}
