package repositories

import (
	"context"
	"errors"
	"fmt"

	models "hockey-playdate/clubhouse/internal/models/gorm"

	"gorm.io/gorm"
)

// UserRepository resolves platform users with GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by primary key
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// GetByAuthProviderID retrieves a user by their identity-provider subject
func (r *UserRepository) GetByAuthProviderID(ctx context.Context, authProviderID string) (*models.User, error) {
	var user models.User

	err := r.db.WithContext(ctx).
		Where("auth_provider_id = ?", authProviderID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}
