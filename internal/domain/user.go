package domain

import "time"

const RoleAdmin = "ADMIN"

// User is an optional DB-backed admin account. The env credential pair in
// the config serves the same purpose for single-admin deployments.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(191);not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:'ADMIN'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
