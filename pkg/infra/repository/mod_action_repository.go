package repository

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModActionRepository struct {
	db *gorm.DB
}

func NewModActionRepository(db *gorm.DB) comment.ModActionRepository {
	return &ModActionRepository{db: db}
}

func (r *ModActionRepository) Create(ctx context.Context, action *comment.ModAction) error {
	if err := r.db.WithContext(ctx).Create(action).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError("comment", action.CommentID.String())
		}
		return fmt.Errorf("failed to create mod action: %w", err)
	}
	return nil
}

func (r *ModActionRepository) DeleteFlags(ctx context.Context, commentID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("comment_id = ? AND type = ?", commentID, comment.ActionFlag).
		Delete(&comment.ModAction{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete flags: %w", res.Error)
	}
	return res.RowsAffected, nil
}
