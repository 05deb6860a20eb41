package providers

import (
	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/mitchellh/mapstructure"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Messages flattens history into role messages. Each turn yields a user
// message and an assistant message; empty utterances are dropped.
func Messages(history moderation.History, prompt string) []Message {
	out := make([]Message, 0, len(history)*2+1)
	for _, turn := range history {
		if turn.Speaker != "" {
			out = append(out, Message{Role: RoleUser, Content: turn.Speaker})
		}
		if turn.Counterpart != "" {
			out = append(out, Message{Role: RoleAssistant, Content: turn.Counterpart})
		}
	}
	return append(out, Message{Role: RoleUser, Content: prompt})
}

// DecodeOptions fills out from the free-form provider options. Unknown keys
// are ignored.
func DecodeOptions(options map[string]interface{}, out interface{}) error {
	if len(options) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(options)
}
