package comment

import (
	"strings"
	"time"

	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Comment) TableName() string {
	return "public.comments"
}

// NewComment rejects blank content and content longer than maxChars runes
// when maxChars is positive.
func NewComment(authorID, content string, maxChars int) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewValidationError("content", "is required")
	}
	if maxChars > 0 && len([]rune(content)) > maxChars {
		return nil, domain.NewValidationError("content", "is too long")
	}
	return &Comment{
		ID:        uuid.New(),
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Listed is a comment joined with its author and flag state.
type Listed struct {
	ID        uuid.UUID
	Content   string
	AuthorID  string
	Author    string
	CreatedAt time.Time
	Flagged   bool
}

// View is what a given viewer may see of a comment.
type View struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	IsHidden  bool      `json:"is_hidden"`
}

// Visible applies the board visibility rule: flagged comments are shown only
// to their author and to admins.
func Visible(viewer *User, viewerID string, listed []Listed) []View {
	admin := viewer != nil && viewer.IsAdmin()
	views := make([]View, 0, len(listed))
	for _, c := range listed {
		if c.Flagged && !admin && c.AuthorID != viewerID {
			continue
		}
		views = append(views, View{
			ID:        c.ID,
			Content:   c.Content,
			AuthorID:  c.AuthorID,
			Author:    c.Author,
			CreatedAt: c.CreatedAt,
			IsHidden:  c.Flagged,
		})
	}
	return views
}
