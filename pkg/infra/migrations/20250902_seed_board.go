package migrations

import (
	"github.com/NeuralTrust/TrustGuard/pkg/infra/database"
	"gorm.io/gorm"
)

// Demo users and comments. The second comment starts out flagged by the admin.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250902_seed_board",
		Name: "Seed board users and comments",

		Up: func(db *gorm.DB) error {
			return db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Exec(`
					INSERT INTO users (id, username, role) VALUES
						('default-admin', 'Admin', 'ADMIN'),
						('default-user', 'User', 'USER'),
						('second-user', 'User2', 'USER'),
						('third-user', 'ConcernedResident', 'USER')
					ON CONFLICT (id) DO NOTHING;
				`).Error; err != nil {
					return err
				}

				if err := tx.Exec(`
					INSERT INTO comments (id, content, author_id, created_at) VALUES
						('00000000-0000-4000-8000-000000000001',
						 'It''s a complex issue. We need more supportive housing and mental health services alongside long-term affordability policies.',
						 'default-user', NOW() - INTERVAL '3 minutes'),
						('00000000-0000-4000-8000-000000000002',
						 'If immigrants stopped coming here, there''d be enough housing for the rest of us.',
						 'second-user', NOW() - INTERVAL '2 minutes'),
						('00000000-0000-4000-8000-000000000003',
						 'Shelter capacity helps in emergencies, but permanent housing and case management reduce return-to-homelessness rates.',
						 'third-user', NOW() - INTERVAL '1 minute')
					ON CONFLICT (id) DO NOTHING;
				`).Error; err != nil {
					return err
				}

				return tx.Exec(`
					INSERT INTO mod_actions (type, comment_id, mod_id)
					SELECT 'FLAG', '00000000-0000-4000-8000-000000000002', 'default-admin'
					WHERE NOT EXISTS (
						SELECT 1 FROM mod_actions
						WHERE comment_id = '00000000-0000-4000-8000-000000000002' AND type = 'FLAG'
					);
				`).Error
			})
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`
				DELETE FROM comments WHERE id IN (
					'00000000-0000-4000-8000-000000000001',
					'00000000-0000-4000-8000-000000000002',
					'00000000-0000-4000-8000-000000000003'
				);
				DELETE FROM users WHERE id IN ('default-admin', 'default-user', 'second-user', 'third-user');
			`).Error
		},
	})
}
