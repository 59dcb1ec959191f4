package model

import "time"

type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         Role      `gorm:"column:role;type:enum('MEMBER','ADMIN');default:'MEMBER';not null"`
	TeamID       *int64    `gorm:"column:team_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	Team *Team `gorm:"foreignKey:TeamID"`
}
