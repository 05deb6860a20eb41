package request

import (
	"encoding/json"
	"strings"
	"testing"

	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequest_Validate(t *testing.T) {
	limits := Limits{MaxPromptChars: 5, MaxHistoryTurns: 1}
	prompt := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     ChatRequest
		wantErr string
	}{
		{name: "missing prompt", req: ChatRequest{}, wantErr: "prompt: field required"},
		{name: "empty prompt is allowed", req: ChatRequest{Prompt: prompt("")}},
		{name: "prompt at limit", req: ChatRequest{Prompt: prompt("ééééé")}},
		{name: "prompt too long", req: ChatRequest{Prompt: prompt("hello!")}, wantErr: "prompt: must be at most 5 characters"},
		{
			name: "too many turns",
			req: ChatRequest{
				Prompt:  prompt("hi"),
				History: moderation.History{moderation.NewTurn("a", "okay"), moderation.NewTurn("b", "okay")},
			},
			wantErr: "history: must have at most 1 turns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(limits)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestChatRequest_Decode(t *testing.T) {
	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(`{"prompt":"x","history":[["a","flagged"]]}`), &req))
	assert.Equal(t, "x", *req.Prompt)
	assert.Equal(t, moderation.History{moderation.NewTurn("a", "flagged")}, req.History)

	err := json.Unmarshal([]byte(`{"prompt":"x","history":[["a"]]}`), &req)
	assert.ErrorIs(t, err, moderation.ErrInvalidTurn)

	err = json.Unmarshal([]byte(`{"prompt":"x","history":[["a", 1]]}`), &req)
	assert.True(t, strings.Contains(err.Error(), moderation.ErrInvalidTurn.Error()))
}
