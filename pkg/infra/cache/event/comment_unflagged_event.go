package event

import "time"

type CommentUnflaggedEvent struct {
	CommentID string    `json:"comment_id"`
	ModID     string    `json:"mod_id"`
	Removed   int64     `json:"removed"`
	At        time.Time `json:"at"`
}

func (e CommentUnflaggedEvent) Type() string {
	return CommentUnflaggedEventType
}
