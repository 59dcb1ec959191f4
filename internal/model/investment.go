package model

import "time"

// Investment rows are append-only; payouts are derived from them at
// resolution time and balances never reference them again afterwards.
type Investment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TeamID    int64     `gorm:"column:team_id;index;not null"`
	StartupID int64     `gorm:"column:startup_id;index;not null"`
	Amount    int64     `gorm:"column:amount;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`

	Team    Team    `gorm:"foreignKey:TeamID"`
	Startup Startup `gorm:"foreignKey:StartupID"`
}
