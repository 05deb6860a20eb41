package request

import (
	"strings"

	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
)

type SessionRequest struct {
	UserID string `json:"userId" example:"default-user"`
}

func (r *SessionRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return domain.NewValidationError("userId", "is required")
	}
	return nil
}

type CommentRequest struct {
	Content string `json:"content" example:"The new bike lanes are great."`
}

type ModerateRequest struct {
	Content string `json:"content"`
}
