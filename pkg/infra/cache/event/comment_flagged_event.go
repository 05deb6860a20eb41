package event

import "time"

const (
	SourceAuto   = "auto"
	SourceManual = "manual"
)

type CommentFlaggedEvent struct {
	CommentID string    `json:"comment_id"`
	ModID     string    `json:"mod_id"`
	Source    string    `json:"source"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

func (e CommentFlaggedEvent) Type() string {
	return CommentFlaggedEventType
}
