package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type stateErr string

func (e stateErr) Error() string    { return "pg error " + string(e) }
func (e stateErr) SQLState() string { return string(e) }

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert: %w", stateErr("23503"))))
	assert.False(t, isForeignKeyViolation(stateErr("23505")))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
	assert.False(t, isForeignKeyViolation(nil))
}

func TestPgErrorName(t *testing.T) {
	assert.Equal(t, "unique_violation", pgErrorName(stateErr("23505")))
	assert.Equal(t, "", pgErrorName(errors.New("boom")))
}
