package model

import "time"

type Outcome string

const (
	OutcomePending Outcome = "PENDING"
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// Startup is an investable pitch. Outcome leaves PENDING exactly once;
// Multiplier is fixed at creation and only editable while still PENDING.
type Startup struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	Pitch       string    `gorm:"column:pitch;type:text;not null"`
	Outcome     Outcome   `gorm:"column:outcome;type:enum('PENDING','SUCCESS','FAILURE');default:'PENDING';not null"`
	Multiplier  float64   `gorm:"column:multiplier;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Investments []Investment `gorm:"foreignKey:StartupID"`
}
