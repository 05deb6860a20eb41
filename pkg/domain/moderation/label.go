package moderation

import "strings"

type Label string

const (
	LabelFlagged Label = "flagged"
	LabelOkay    Label = "okay"
)

func (l Label) String() string {
	return string(l)
}

// Normalize maps arbitrary model output to a Label. "flagged" wins over
// "okay" when both occur and anything else resolves to LabelOkay.
func Normalize(raw string) Label {
	text := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(text, string(LabelFlagged)):
		return LabelFlagged
	case strings.Contains(text, string(LabelOkay)):
		return LabelOkay
	default:
		return LabelOkay
	}
}
