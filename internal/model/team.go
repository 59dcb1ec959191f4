package model

import "time"

type Team struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name      string    `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
	Balance   int64     `gorm:"column:balance;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Users       []User       `gorm:"foreignKey:TeamID"`
	Investments []Investment `gorm:"foreignKey:TeamID"`
}
