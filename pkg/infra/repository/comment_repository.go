package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listCommentsSQL = `
SELECT c.id, c.content, c.author_id, u.username AS author, c.created_at,
       EXISTS (
           SELECT 1 FROM public.mod_actions m
           WHERE m.comment_id = c.id AND m.type = ?
       ) AS flagged
FROM public.comments c
JOIN public.users u ON u.id = c.author_id
ORDER BY c.created_at DESC`

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError("user", c.AuthorID)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	entity := new(comment.Comment)
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("comment", id.String())
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return entity, nil
}

func (r *CommentRepository) ListWithFlags(ctx context.Context) ([]comment.Listed, error) {
	var rows []comment.Listed
	if err := r.db.WithContext(ctx).Raw(listCommentsSQL, comment.ActionFlag).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return rows, nil
}
