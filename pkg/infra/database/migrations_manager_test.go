package database_test

import (
	"testing"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func noop(*gorm.DB) error { return nil }

func TestRegisterMigration(t *testing.T) {
	database.RegisterMigration(database.Migration{ID: "test_0002_second", Name: "second", Up: noop})
	database.RegisterMigration(database.Migration{ID: "test_0001_first", Name: "first", Up: noop})

	assert.Panics(t, func() {
		database.RegisterMigration(database.Migration{ID: "test_0001_first", Name: "again", Up: noop})
	})

	pending := database.Pending(map[string]struct{}{})
	var ids []string
	for _, m := range pending {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"test_0001_first", "test_0002_second"}, ids)

	pending = database.Pending(map[string]struct{}{"test_0001_first": {}})
	if assert.Len(t, pending, 1) {
		assert.Equal(t, "test_0002_second", pending[0].ID)
	}
}
