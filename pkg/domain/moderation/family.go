package moderation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFamily = errors.New("unknown model family")

// Family selects how a model is called. It is resolved once at startup.
type Family string

const (
	FamilyHistoryAware Family = "history_aware"
	FamilyStateless    Family = "stateless"
)

const historyAwareMarker = "chatglm"

func (f Family) String() string {
	return string(f)
}

func ParseFamily(value string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(value))) {
	case FamilyHistoryAware:
		return FamilyHistoryAware, nil
	case FamilyStateless:
		return FamilyStateless, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFamily, value)
	}
}

// ResolveFamily honours an explicit family and otherwise derives it from the
// model identifier.
func ResolveFamily(explicit, modelName string) (Family, error) {
	if strings.TrimSpace(explicit) != "" {
		return ParseFamily(explicit)
	}
	if strings.Contains(strings.ToLower(modelName), historyAwareMarker) {
		return FamilyHistoryAware, nil
	}
	return FamilyStateless, nil
}
