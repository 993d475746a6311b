package models

import (
	"time"

	"github.com/google/uuid"
)

type BillStatus string

type BillCategory string

type NotificationKind string

type ThemeMode string

type Language string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"

	CategoryUtilities BillCategory = "utilities"
	CategoryFood      BillCategory = "food"
	CategoryGeneral   BillCategory = "general"
	CategoryHousing   BillCategory = "housing"

	NotificationKindError   NotificationKind = "error"
	NotificationKindWarning NotificationKind = "warning"
	NotificationKindInfo    NotificationKind = "info"

	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"

	LanguagePT Language = "pt"
	LanguageEN Language = "en"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Theme        ThemeMode `json:"theme"`
	Language     Language  `json:"language"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Bill хранит счет без поля статуса: статус выводится из paid_date и
// due_date относительно текущей даты при каждом чтении.
type Bill struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Name        string       `json:"name"`
	AmountCents int64        `json:"amount_cents"`
	Category    BillCategory `json:"category"`
	DueDate     time.Time    `json:"due_date"`
	PaidDate    *time.Time   `json:"paid_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Notification — производное состояние: набор пересчитывается целиком при
// каждом изменении счетов, между пересчетами переносится только флаг read.
type Notification struct {
	ID        string           `json:"id"`
	BillID    uuid.UUID        `json:"bill_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}
