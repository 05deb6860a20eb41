package moderation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurn_JSON(t *testing.T) {
	var h History
	err := json.Unmarshal([]byte(`[["hi","okay"],["bye",""]]`), &h)
	require.NoError(t, err)
	assert.Equal(t, History{NewTurn("hi", "okay"), NewTurn("bye", "")}, h)

	out, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `[["hi","okay"],["bye",""]]`, string(out))
}

func TestTurn_UnmarshalRejectsMalformed(t *testing.T) {
	cases := []string{
		`["only one"]`,
		`["a","b","c"]`,
		`["a",1]`,
		`["a",null]`,
		`"not a pair"`,
		`{"a":"b"}`,
	}
	for _, c := range cases {
		var turn Turn
		err := json.Unmarshal([]byte(c), &turn)
		assert.ErrorIs(t, err, ErrInvalidTurn, c)
	}
}

func TestHistory_MarshalNil(t *testing.T) {
	var h History
	out, err := json.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestHistory_AppendDoesNotMutate(t *testing.T) {
	prior := make(History, 1, 4)
	prior[0] = NewTurn("a", "okay")

	next := prior.Append(NewTurn("b", "flagged"))
	other := prior.Append(NewTurn("c", "okay"))

	assert.Len(t, prior, 1)
	assert.Equal(t, History{NewTurn("a", "okay"), NewTurn("b", "flagged")}, next)
	assert.Equal(t, History{NewTurn("a", "okay"), NewTurn("c", "okay")}, other)
}
