package event

import "reflect"

type Event interface {
	Type() string
}

const (
	CommentFlaggedEventType   = "CommentFlaggedEvent"
	CommentUnflaggedEventType = "CommentUnflaggedEvent"
)

var Registry = map[string]reflect.Type{
	CommentFlaggedEventType:   reflect.TypeOf(CommentFlaggedEvent{}),
	CommentUnflaggedEventType: reflect.TypeOf(CommentUnflaggedEvent{}),
}
