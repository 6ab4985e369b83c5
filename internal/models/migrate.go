package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate registers the custom join tables and migrates every model.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Notification{}, "Recipients", &NotificationRecipient{}); err != nil {
		return fmt.Errorf("setup notification recipients join table: %w", err)
	}
	if err := db.SetupJoinTable(&Notification{}, "ReadBy", &NotificationRead{}); err != nil {
		return fmt.Errorf("setup notification reads join table: %w", err)
	}

	return db.AutoMigrate(
		&User{},
		&RevokedToken{},
		&Project{},
		&MediaItem{},
		&Skill{},
		&About{},
		&Like{},
		&ContactMessage{},
		&Notification{},
		&EmailSubscription{},
		&SiteSettings{},
		&CVExperience{},
		&CVEducation{},
		&CVSkill{},
		&CVLanguage{},
		&CVCertification{},
		&CVProject{},
		&CVInterest{},
	)
}
