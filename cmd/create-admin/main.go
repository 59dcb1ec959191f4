package main

import (
	"flag"
	"time"

	"github.com/venturearena/backend/internal/config"
	"github.com/venturearena/backend/internal/database"
	"github.com/venturearena/backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeds an ADMIN user. Admins carry no team; they resolve outcomes and manage
// startups but never invest.
func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if *name == "" || *email == "" || *password == "" {
		logger.Fatal("name, email and password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.NewConnection(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := model.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(&admin).Error; err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.Int64("userID", admin.ID), zap.String("email", *email))
}
