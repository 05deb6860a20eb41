package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFamily(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		model    string
		want     Family
		wantErr  bool
	}{
		{name: "default model is stateless", model: "Qwen/Qwen1.5-1.8B", want: FamilyStateless},
		{name: "chatglm is history aware", model: "THUDM/chatglm3-6b", want: FamilyHistoryAware},
		{name: "marker is case insensitive", model: "THUDM/ChatGLM2-6B", want: FamilyHistoryAware},
		{name: "explicit overrides model", explicit: "stateless", model: "THUDM/chatglm3-6b", want: FamilyStateless},
		{name: "explicit history aware", explicit: " History_Aware ", model: "gpt-4o-mini", want: FamilyHistoryAware},
		{name: "unknown explicit", explicit: "streaming", model: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFamily(tt.explicit, tt.model)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFamily)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
