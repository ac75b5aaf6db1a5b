package postgres

import (
	"time"

	"github.com/google/uuid"
)

type userModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Image        string    `gorm:"column:image"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type calendarModel struct {
	CalendarID         uuid.UUID  `gorm:"column:calendar_id;type:uuid;primaryKey"`
	Name               string     `gorm:"column:name"`
	Description        string     `gorm:"column:description"`
	IsPublic           bool       `gorm:"column:is_public"`
	Color              string     `gorm:"column:color"`
	OwnerID            uuid.UUID  `gorm:"column:owner_id"`
	ProfessionalCardID *uuid.UUID `gorm:"column:professional_card_id"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (calendarModel) TableName() string { return "calendars" }

type calendarManagerModel struct {
	ManagerID  uuid.UUID `gorm:"column:manager_id;type:uuid;primaryKey"`
	CalendarID uuid.UUID `gorm:"column:calendar_id"`
	UserID     uuid.UUID `gorm:"column:user_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (calendarManagerModel) TableName() string { return "calendar_managers" }

type planModel struct {
	PlanID          uuid.UUID `gorm:"column:plan_id;type:uuid;primaryKey"`
	Title           string    `gorm:"column:title"`
	Description     string    `gorm:"column:description"`
	StartDate       time.Time `gorm:"column:start_date"`
	EndDate         time.Time `gorm:"column:end_date"`
	Location        string    `gorm:"column:location"`
	OnlineLink      string    `gorm:"column:online_link"`
	MaxParticipants int       `gorm:"column:max_participants"`
	Price           float64   `gorm:"column:price"`
	Tags            string    `gorm:"column:tags;type:jsonb"`
	Visibility      string    `gorm:"column:visibility"`
	OwnerID         uuid.UUID `gorm:"column:owner_id"`
	CalendarID      uuid.UUID `gorm:"column:calendar_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (planModel) TableName() string { return "plans" }

type planParticipantModel struct {
	ParticipantID uuid.UUID `gorm:"column:participant_id;type:uuid;primaryKey"`
	PlanID        uuid.UUID `gorm:"column:plan_id"`
	UserID        uuid.UUID `gorm:"column:user_id"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (planParticipantModel) TableName() string { return "plan_participants" }

type professionalCardModel struct {
	CardID      uuid.UUID `gorm:"column:card_id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name"`
	Category    string    `gorm:"column:category"`
	Description string    `gorm:"column:description"`
	Address     string    `gorm:"column:address"`
	Phone       string    `gorm:"column:phone"`
	Email       string    `gorm:"column:email"`
	Website     string    `gorm:"column:website"`
	Instagram   string    `gorm:"column:instagram"`
	Tags        string    `gorm:"column:tags;type:jsonb"`
	OwnerID     uuid.UUID `gorm:"column:owner_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (professionalCardModel) TableName() string { return "professional_cards" }

type followerModel struct {
	FollowerID uuid.UUID `gorm:"column:follower_id;type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"column:user_id"`
	CardID     uuid.UUID `gorm:"column:card_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (followerModel) TableName() string { return "followers" }

type followingModel struct {
	FollowingID uuid.UUID `gorm:"column:following_id;type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"column:user_id"`
	CardID      uuid.UUID `gorm:"column:card_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (followingModel) TableName() string { return "followings" }

type cardManagerModel struct {
	ManagerID uuid.UUID `gorm:"column:manager_id;type:uuid;primaryKey"`
	CardID    uuid.UUID `gorm:"column:card_id"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (cardManagerModel) TableName() string { return "card_managers" }

type connectionModel struct {
	ConnectionID    uuid.UUID `gorm:"column:connection_id;type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"column:user_id"`
	ConnectedUserID uuid.UUID `gorm:"column:connected_user_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (connectionModel) TableName() string { return "connections" }

type connectionRequestModel struct {
	RequestID uuid.UUID `gorm:"column:request_id;type:uuid;primaryKey"`
	FromID    uuid.UUID `gorm:"column:from_id"`
	ToID      uuid.UUID `gorm:"column:to_id"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (connectionRequestModel) TableName() string { return "connection_requests" }

type notificationModel struct {
	NotificationID uuid.UUID  `gorm:"column:notification_id;type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"column:user_id"`
	Type           string     `gorm:"column:type"`
	Title          string     `gorm:"column:title"`
	Message        string     `gorm:"column:message"`
	Data           string     `gorm:"column:data;type:jsonb"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	ReadAt         *time.Time `gorm:"column:read_at"`
}

func (notificationModel) TableName() string { return "notifications" }
