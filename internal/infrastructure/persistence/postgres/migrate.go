package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&UserModel{},
		&PostModel{},
		&PostTranslationModel{},
		&SavedPostModel{},
		&ForumTopicModel{},
		&ForumCommentModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
