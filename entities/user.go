package entities

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // admin|user
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ActivityLog is the audit trail behind the history page. One row per
// user-visible action (login, add/update/delete registrant, export, ...).
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserName  string    `json:"user_name"`
	Action    string    `gorm:"index" json:"action"`
	Target    string    `json:"target"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
