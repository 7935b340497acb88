package models

import "time"

// Profile is one tracked family member. Authentication lives outside
// this service; profiles only scope data.
type Profile struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
}
