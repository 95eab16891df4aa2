package model

import (
	"encoding/json"
	"time"
)

// UserStats accumulates swipe/purchase totals, points, streaks and unlocked
// achievement ids. Date fields use YYYY-MM-DD in the account's local day.
type UserStats struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	UserID            string          `json:"user_id" gorm:"uniqueIndex;not null"`
	TotalSwipes       int             `json:"total_swipes" gorm:"not null"`
	TotalLikes        int             `json:"total_likes" gorm:"not null"`
	TotalSkips        int             `json:"total_skips" gorm:"not null"`
	Points            int             `json:"points" gorm:"not null"`
	TotalPurchases    int             `json:"total_purchases" gorm:"not null"`
	TotalSpent        float64         `json:"total_spent" gorm:"not null"`
	CurrentStreak     int             `json:"current_streak" gorm:"not null"`
	LongestStreak     int             `json:"longest_streak" gorm:"not null"`
	LastSwipeDate     string          `json:"last_swipe_date"`
	DailyLoginClaimed string          `json:"daily_login_claimed"`
	Achievements      json.RawMessage `json:"achievements" gorm:"not null"`
	CreatedAt         time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (us *UserStats) AchievementIDs() []string {
	var ids []string
	if len(us.Achievements) == 0 {
		return ids
	}
	_ = json.Unmarshal(us.Achievements, &ids)
	return ids
}

func (us *UserStats) SetAchievementIDs(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	us.Achievements = data
	return nil
}

// Achievement is a static catalog entry gated on one of the stat counters.
type Achievement struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Requirement string  `json:"requirement"` // swipes | streak | purchases | spent
	Threshold   float64 `json:"threshold"`
}
