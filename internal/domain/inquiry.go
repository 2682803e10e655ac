package domain

import "time"

type Inquiry struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string     `json:"name" gorm:"not null"`
	Contact   string     `json:"contact" gorm:"not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	Answer    *string    `json:"answer" gorm:"type:text"`
	IsReplied bool       `json:"isReplied" gorm:"default:false"`
	RepliedAt *time.Time `json:"repliedAt"`
	IPAddress string     `json:"ipAddress" gorm:"type:varchar(45)"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}
