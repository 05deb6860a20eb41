package request

import (
	"fmt"
	"unicode/utf8"

	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
)

type Limits struct {
	MaxPromptChars  int
	MaxHistoryTurns int
}

type ChatRequest struct {
	Prompt  *string            `json:"prompt" example:"We need to invest more in housing policy."`
	History moderation.History `json:"history" swaggertype:"array,array,string"`
}

func (r *ChatRequest) Validate(limits Limits) error {
	if r.Prompt == nil {
		return domain.NewValidationError("prompt", "field required")
	}
	if limits.MaxPromptChars > 0 && utf8.RuneCountInString(*r.Prompt) > limits.MaxPromptChars {
		return domain.NewValidationError("prompt", fmt.Sprintf("must be at most %d characters", limits.MaxPromptChars))
	}
	if limits.MaxHistoryTurns > 0 && len(r.History) > limits.MaxHistoryTurns {
		return domain.NewValidationError("history", fmt.Sprintf("must have at most %d turns", limits.MaxHistoryTurns))
	}
	return nil
}
