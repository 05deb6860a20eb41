package cache

import (
	"encoding/json"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type RedisMessage struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}

// EncodeMessage wraps ev in the envelope published on a channel.
func EncodeMessage(ev event.Event) ([]byte, error) {
	b, err := jsonAPI.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return jsonAPI.Marshal(RedisMessage{
		Type:  ev.Type(),
		Event: b,
	})
}
