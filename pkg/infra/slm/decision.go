package slm

import (
	"regexp"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	"github.com/valyala/fastjson"
)

const autoFlagReason = "auto-flagged"

var status406Pattern = regexp.MustCompile(`"status"\s*:\s*406`)

// Decide maps the "response" field of a /chat reply to a board decision.
// Plain labels come first, then the legacy numeric strings, then a JSON
// verdict, and finally a raw search for a 406 status.
func Decide(reply string) comment.Decision {
	switch reply {
	case "flagged", "406":
		return comment.Decision{Flag: true, Status: 406, Reason: autoFlagReason}
	case "okay", "200":
		return comment.Decision{Flag: false, Status: 200}
	}

	v, err := fastjson.Parse(reply)
	if err != nil {
		return comment.Decision{Flag: status406Pattern.MatchString(reply)}
	}
	if v.Type() != fastjson.TypeObject {
		return comment.Decision{}
	}

	d := comment.Decision{
		Category: string(v.GetStringBytes("category")),
	}
	if s := v.Get("status"); s != nil && s.Type() == fastjson.TypeNumber {
		d.Status = s.GetInt()
	}
	d.Flag = v.GetBool("flag") || d.Status == 406
	for _, key := range []string{"rationale", "response", "reason"} {
		if r := v.GetStringBytes(key); len(r) > 0 {
			d.Reason = string(r)
			break
		}
	}
	return d
}
