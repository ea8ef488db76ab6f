package domain

import "time"

// Todo represents a single to-do item owned by exactly one user.
type Todo struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	OwnerID     string    `json:"owner_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
