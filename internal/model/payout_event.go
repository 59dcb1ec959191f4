package model

import "time"

// PayoutEvent is the notification outbox. Rows are written inside the same
// transaction as the balance credit and drained to the queue by the
// payout-publisher worker.
type PayoutEvent struct {
	ID          int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	EventID     string     `gorm:"column:event_id;type:varchar(64);index;not null"`
	StartupID   int64      `gorm:"column:startup_id;not null;<-:create"`
	TeamID      int64      `gorm:"column:team_id;not null;<-:create"`
	Amount      int64      `gorm:"column:amount;not null"`
	Outcome     Outcome    `gorm:"column:outcome;type:enum('PENDING','SUCCESS','FAILURE');not null"`
	Published   bool       `gorm:"column:published;default:false;not null"`
	PublishedAt *time.Time `gorm:"column:published_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`

	Startup Startup `gorm:"foreignKey:StartupID"`
	Team    Team    `gorm:"foreignKey:TeamID"`
}
