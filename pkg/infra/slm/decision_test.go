package slm_test

import (
	"testing"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/slm"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  comment.Decision
	}{
		{"flagged label", "flagged", comment.Decision{Flag: true, Status: 406, Reason: "auto-flagged"}},
		{"okay label", "okay", comment.Decision{Status: 200}},
		{"legacy 406", "406", comment.Decision{Flag: true, Status: 406, Reason: "auto-flagged"}},
		{"legacy 200", "200", comment.Decision{Status: 200}},
		{
			"json flag",
			`{"flag":true,"rationale":"slur","category":"hate"}`,
			comment.Decision{Flag: true, Reason: "slur", Category: "hate"},
		},
		{
			"json status 406",
			`{"status":406,"response":"not allowed"}`,
			comment.Decision{Flag: true, Status: 406, Reason: "not allowed"},
		},
		{
			"json reason fallback order",
			`{"status":200,"rationale":"","reason":"fine"}`,
			comment.Decision{Status: 200, Reason: "fine"},
		},
		{"json non object", `123`, comment.Decision{}},
		{"raw text with 406 status", `status: {"status": 406, oops`, comment.Decision{Flag: true}},
		{"raw text", "I cannot decide", comment.Decision{}},
		{"label is case sensitive", "Flagged", comment.Decision{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slm.Decide(tt.reply))
		})
	}
}
