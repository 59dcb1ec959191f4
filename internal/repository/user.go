package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/venturearena/backend/internal/model"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")
var ErrUserDuplicate = errors.New("USER_DUPLICATE")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type User struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &User{db: db}
}

func (u *User) Create(ctx context.Context, user *model.User) error {
	db := GetTx(ctx, u.db)
	err := db.Create(user).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUserDuplicate
	}

	return err
}

func (u *User) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := GetTx(ctx, u.db).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}
