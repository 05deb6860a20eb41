package comment

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=UserRepository --dir=. --output=./mocks --filename=user_repository_mock.go --case=underscore --with-expecter
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	FirstAdmin(ctx context.Context) (*User, error)
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	ListWithFlags(ctx context.Context) ([]Listed, error)
}

//go:generate mockery --name=ModActionRepository --dir=. --output=./mocks --filename=mod_action_repository_mock.go --case=underscore --with-expecter
type ModActionRepository interface {
	Create(ctx context.Context, action *ModAction) error
	DeleteFlags(ctx context.Context, commentID uuid.UUID) (int64, error)
}
