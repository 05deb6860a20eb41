package migrations

import (
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	"gorm.io/gorm"
)

// Tables: users, comments, mod_actions
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250901_board_schema",
		Name: "Create board tables: users, comments, mod_actions",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS users (
					id       TEXT PRIMARY KEY,
					username TEXT NOT NULL,
					role     TEXT NOT NULL DEFAULT 'USER' CHECK (role IN ('USER', 'ADMIN'))
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS comments (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					content    TEXT NOT NULL,
					author_id  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_comments_created_at
				ON comments (created_at DESC);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS mod_actions (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					type       TEXT NOT NULL,
					comment_id UUID NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
					mod_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_mod_actions_comment_type
				ON mod_actions (comment_id, type);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`
				DROP TABLE IF EXISTS mod_actions;
				DROP TABLE IF EXISTS comments;
				DROP TABLE IF EXISTS users;
			`).Error
		},
	})
}
