package moderation

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidTurn = errors.New("history turn must be a pair of strings")

// Turn is one exchange, encoded on the wire as a two element array.
type Turn struct {
	Speaker     string
	Counterpart string
}

type History []Turn

func NewTurn(speaker, counterpart string) Turn {
	return Turn{Speaker: speaker, Counterpart: counterpart}
}

func (t Turn) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Speaker, t.Counterpart})
}

func (t *Turn) UnmarshalJSON(data []byte) error {
	var pair []*string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTurn, err)
	}
	if len(pair) != 2 || pair[0] == nil || pair[1] == nil {
		return ErrInvalidTurn
	}
	t.Speaker = *pair[0]
	t.Counterpart = *pair[1]
	return nil
}

// MarshalJSON encodes a nil history as an empty array.
func (h History) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Turn(h))
}

// Append returns a copy of h with turn added at the end. The receiver is
// never mutated.
func (h History) Append(turn Turn) History {
	out := make(History, 0, len(h)+1)
	out = append(out, h...)
	return append(out, turn)
}
