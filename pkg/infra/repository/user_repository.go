package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) comment.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*comment.User, error) {
	entity := new(comment.User)
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return entity, nil
}

func (r *UserRepository) FirstAdmin(ctx context.Context) (*comment.User, error) {
	entity := new(comment.User)
	if err := r.db.WithContext(ctx).
		Where("role = ?", comment.RoleAdmin).
		Order("id").
		First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("admin user", "")
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return entity, nil
}
