package comment

import "context"

// Decision is the board's reading of a moderation reply.
type Decision struct {
	Flag     bool   `json:"flag"`
	Status   int    `json:"status,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Category string `json:"category,omitempty"`
}

//go:generate mockery --name=Moderator --dir=. --output=./mocks --filename=moderator_mock.go --case=underscore --with-expecter
type Moderator interface {
	// Moderate never fails; any error reads as "do not flag".
	Moderate(ctx context.Context, content string) Decision
}
