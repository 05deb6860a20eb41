package moderation

import (
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
)

// PromptBuilder composes the model input for one comment.
type PromptBuilder struct {
	policy string
}

func NewPromptBuilder(policy string) *PromptBuilder {
	if policy == "" {
		policy = domain.PolicyPrompt
	}
	return &PromptBuilder{policy: policy}
}

func (b *PromptBuilder) Policy() string {
	return b.policy
}

// Flat is the stateless input. Prior turns are deliberately not included.
func (b *PromptBuilder) Flat(comment string) string {
	return domain.FlatPrompt(b.policy, comment)
}

// Conversation is the history-aware input: prior turns led by the policy turn.
func (b *PromptBuilder) Conversation(prior domain.History) domain.History {
	return domain.WithPolicy(b.policy, prior)
}
