package comment

import (
	"time"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionFlag ActionType = "FLAG"
)

type ModAction struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Type      ActionType `json:"type"`
	CommentID uuid.UUID  `json:"comment_id" gorm:"type:uuid"`
	ModID     string     `json:"mod_id"`
	CreatedAt time.Time  `json:"created_at"`
}

func (m ModAction) TableName() string {
	return "public.mod_actions"
}

func NewFlag(commentID uuid.UUID, modID string) *ModAction {
	return &ModAction{
		ID:        uuid.New(),
		Type:      ActionFlag,
		CommentID: commentID,
		ModID:     modID,
		CreatedAt: time.Now().UTC(),
	}
}
