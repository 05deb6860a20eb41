package moderation

import "strings"

const PolicyPrompt = `
You are an impartial content moderator. Evaluate ONE user comment and decide if it violates policy.

Flag content when it:
- Attacks, dehumanizes, or targets a protected class (e.g., immigrants, race, ethnicity, nationality, religion, gender identity, sexual orientation, disability)
- Advocates exclusion or expulsion toward a protected class (e.g., "kick them out", "deport them", "ban immigrants", "they should be kicked out")
- Uses slurs or hateful/harassing language.

Allowed: political/policy critique that does not target a protected class.

Output exactly one word and nothing else:
- "flagged" if it violates the policy
- "okay" if it does not

Examples (User → Assistant):
User: Immigrants are vermin and should be kicked out. → flagged
User: Immigrants are bad and should be kicked out. → flagged
User: We need to invest more in housing policy. → okay
User: Deport all immigrants now. → flagged
User: I disagree with current immigration policy costs. → okay
User: Refugees are parasites. → flagged
`

// FlatPrompt renders the single-turn prompt used by stateless models. The
// comment is inserted verbatim.
func FlatPrompt(policy, comment string) string {
	var b strings.Builder
	b.Grow(len(policy) + len(comment) + 32)
	b.WriteString("System: ")
	b.WriteString(policy)
	b.WriteString("\nUser: ")
	b.WriteString(comment)
	b.WriteString("\nAssistant:")
	return b.String()
}

// WithPolicy returns history with the policy turn first. A history that
// already starts with it is returned as a copy.
func WithPolicy(policy string, history History) History {
	if len(history) > 0 && history[0].Speaker == policy {
		out := make(History, len(history))
		copy(out, history)
		return out
	}
	out := make(History, 0, len(history)+1)
	out = append(out, NewTurn(policy, ""))
	return append(out, history...)
}
