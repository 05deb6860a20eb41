package migrations_test

import (
	"testing"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	_ "github.com/NeuralTrust/TrustGuard/pkg/infra/migrations"
	"github.com/stretchr/testify/assert"
)

func TestMigrationsRegistered(t *testing.T) {
	var ids []string
	for _, m := range database.Pending(nil) {
		assert.NotNil(t, m.Up, m.ID)
		assert.NotNil(t, m.Down, m.ID)
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"20250901_board_schema", "20250902_seed_board"}, ids)
}
