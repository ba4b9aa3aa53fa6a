package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. cmd/api, cmd/seed and the e2e suite all go through here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminModel{},
		&projectModel{},
		&messageModel{},
		&photoEntryModel{},
		&photoCommentModel{},
		&uploadModel{},
	)
}
