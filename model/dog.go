package model

import "time"

// DogProfile holds the per-account dog attributes used as scoring input.
// Every attribute except the name is optional; the match scorer treats a
// missing attribute as a neutral signal.
type DogProfile struct {
	ID            string `json:"id" gorm:"primaryKey"`
	UserID        string `json:"user_id" gorm:"uniqueIndex;not null"`
	Name          string `json:"name" gorm:"not null"`
	Size          string `json:"size"`
	ChewStrength  string `json:"chew_strength"`
	PlayStyle     string `json:"play_style"`
	ActivityLevel string `json:"activity_level"`
	PhotoURL      string `json:"photo_url"`
	Birthday      *time.Time `json:"birthday"`
	CreatedAt     time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
