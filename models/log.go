package models

import "time"

// Log is an audit trail row written by mutation handlers.
type Log struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;index" json:"user_id"`
	Action    string    `gorm:"not null" json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `gorm:"column:entity_id" json:"entity_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
