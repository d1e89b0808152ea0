package database

import (
	"errors"
	"fmt"

	"github.com/poseidontrading/poseidon/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser provisions the initial administrator account if no user with
// that username exists yet. It is safe to call on every startup.
func SeedAdminUser(db *gorm.DB, username, password string) error {
	var existing types.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := types.User{
		Username: username,
		Password: string(hash),
		FullName: "Administrator",
		Role:     "ADMIN",
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
