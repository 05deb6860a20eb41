package comment_test

import (
	"strings"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	t.Run("valid content", func(t *testing.T) {
		c, err := comment.NewComment("default-user", "more shelters please", 0)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, "default-user", c.AuthorID)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("blank content", func(t *testing.T) {
		_, err := comment.NewComment("default-user", "   ", 0)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("too long", func(t *testing.T) {
		_, err := comment.NewComment("default-user", strings.Repeat("é", 11), 10)
		assert.True(t, domain.IsValidationError(err))

		_, err = comment.NewComment("default-user", strings.Repeat("é", 10), 10)
		assert.NoError(t, err)
	})
}

func TestVisible(t *testing.T) {
	now := time.Now()
	listed := []comment.Listed{
		{ID: uuid.New(), Content: "fine", AuthorID: "default-user", Author: "User", CreatedAt: now},
		{ID: uuid.New(), Content: "hidden", AuthorID: "second-user", Author: "User2", CreatedAt: now, Flagged: true},
	}

	tests := []struct {
		name     string
		viewer   *comment.User
		viewerID string
		want     []string
	}{
		{
			name:     "admin sees everything",
			viewer:   &comment.User{ID: "default-admin", Role: comment.RoleAdmin},
			viewerID: "default-admin",
			want:     []string{"fine", "hidden"},
		},
		{
			name:     "author sees own flagged comment",
			viewer:   &comment.User{ID: "second-user", Role: comment.RoleUser},
			viewerID: "second-user",
			want:     []string{"fine", "hidden"},
		},
		{
			name:     "other users do not",
			viewer:   &comment.User{ID: "third-user", Role: comment.RoleUser},
			viewerID: "third-user",
			want:     []string{"fine"},
		},
		{
			name:     "unknown viewer",
			viewerID: "ghost",
			want:     []string{"fine"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := comment.Visible(tt.viewer, tt.viewerID, listed)
			var got []string
			for _, v := range views {
				got = append(got, v.Content)
				assert.Equal(t, v.Content == "hidden", v.IsHidden)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
