package domain

import "time"

type PolicySection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Policy holds an editable static page, keyed by slug+locale. Pages missing
// from the store fall back to the bundled i18n defaults.
type Policy struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Slug      string          `json:"slug" gorm:"type:varchar(64);not null;uniqueIndex:idx_policy_slug_locale"`
	Locale    string          `json:"locale" gorm:"type:varchar(8);not null;uniqueIndex:idx_policy_slug_locale"`
	Title     string          `json:"title" gorm:"not null"`
	Intro     *string         `json:"intro" gorm:"type:text"`
	Sections  []PolicySection `json:"sections" gorm:"serializer:json"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
