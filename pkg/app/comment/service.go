package comment

import (
	"context"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=service_mock.go --case=underscore --with-expecter
type Service interface {
	VisibleComments(ctx context.Context, viewerID string) ([]comment.View, error)
	AddComment(ctx context.Context, userID, content string) (*comment.Comment, error)
	FlagComment(ctx context.Context, commentID, modID string) error
	UnflagComment(ctx context.Context, commentID, modID string) error
	Moderate(ctx context.Context, content string) comment.Decision
}

type Config struct {
	MaxCommentChars int
}

type service struct {
	logger    *logrus.Logger
	users     comment.UserRepository
	comments  comment.Repository
	actions   comment.ModActionRepository
	moderator comment.Moderator
	publisher cache.EventPublisher
	cfg       Config
}

// NewService wires the board operations. publisher may be nil when redis is
// disabled.
func NewService(
	logger *logrus.Logger,
	users comment.UserRepository,
	comments comment.Repository,
	actions comment.ModActionRepository,
	moderator comment.Moderator,
	publisher cache.EventPublisher,
	cfg Config,
) Service {
	return &service{
		logger:    logger,
		users:     users,
		comments:  comments,
		actions:   actions,
		moderator: moderator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *service) VisibleComments(ctx context.Context, viewerID string) ([]comment.View, error) {
	viewer, err := s.users.GetByID(ctx, viewerID)
	if err != nil && !domain.IsNotFoundError(err) {
		return nil, err
	}

	listed, err := s.comments.ListWithFlags(ctx)
	if err != nil {
		return nil, err
	}
	return comment.Visible(viewer, viewerID, listed), nil
}

func (s *service) AddComment(ctx context.Context, userID, content string) (*comment.Comment, error) {
	c, err := comment.NewComment(userID, content, s.cfg.MaxCommentChars)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}

	s.autoModerate(ctx, c)
	return c, nil
}

// autoModerate flags c on behalf of the first admin when the moderation API
// says so. Nothing here fails the request.
func (s *service) autoModerate(ctx context.Context, c *comment.Comment) {
	decision := s.moderator.Moderate(ctx, c.Content)
	if !decision.Flag {
		return
	}

	log := s.logger.WithField("comment_id", c.ID.String())
	admin, err := s.users.FirstAdmin(ctx)
	if err != nil {
		log.WithError(err).Warn("no admin to attribute auto-flag to")
		return
	}
	if err := s.actions.Create(ctx, comment.NewFlag(c.ID, admin.ID)); err != nil {
		log.WithError(err).Warn("failed to record auto-flag")
		return
	}
	log.WithField("reason", decision.Reason).Info("comment auto-flagged")

	s.publish(ctx, event.CommentFlaggedEvent{
		CommentID: c.ID.String(),
		ModID:     admin.ID,
		Source:    event.SourceAuto,
		Reason:    decision.Reason,
		At:        time.Now().UTC(),
	})
}

func (s *service) FlagComment(ctx context.Context, commentID, modID string) error {
	id, err := s.authorize(ctx, commentID, modID)
	if err != nil {
		return err
	}
	if err := s.actions.Create(ctx, comment.NewFlag(id, modID)); err != nil {
		return err
	}

	s.publish(ctx, event.CommentFlaggedEvent{
		CommentID: id.String(),
		ModID:     modID,
		Source:    event.SourceManual,
		At:        time.Now().UTC(),
	})
	return nil
}

func (s *service) UnflagComment(ctx context.Context, commentID, modID string) error {
	id, err := s.authorize(ctx, commentID, modID)
	if err != nil {
		return err
	}
	removed, err := s.actions.DeleteFlags(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, event.CommentUnflaggedEvent{
		CommentID: id.String(),
		ModID:     modID,
		Removed:   removed,
		At:        time.Now().UTC(),
	})
	return nil
}

func (s *service) Moderate(ctx context.Context, content string) comment.Decision {
	return s.moderator.Moderate(ctx, content)
}

// authorize checks that modID is an admin and commentID exists.
func (s *service) authorize(ctx context.Context, commentID, modID string) (uuid.UUID, error) {
	id, err := uuid.Parse(commentID)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("commentId", "must be a UUID")
	}

	mod, err := s.users.GetByID(ctx, modID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return uuid.Nil, domain.ErrForbidden
		}
		return uuid.Nil, err
	}
	if !mod.IsAdmin() {
		return uuid.Nil, domain.ErrForbidden
	}

	if _, err := s.comments.GetByID(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *service) publish(ctx context.Context, ev event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.WithError(err).WithField("event", ev.Type()).Warn("failed to publish moderation event")
	}
}
