package dto

import "github.com/pup-picks/pawmatch_api/model"

type StatsResponse struct {
	TotalSwipes    int     `json:"total_swipes"`
	TotalLikes     int     `json:"total_likes"`
	TotalSkips     int     `json:"total_skips"`
	Points         int     `json:"points"`
	TotalPurchases int     `json:"total_purchases"`
	TotalSpent     float64 `json:"total_spent"`
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	LastSwipeDate  string  `json:"last_swipe_date,omitempty"`

	Unlocked []model.Achievement `json:"unlocked"`
	Catalog  []model.Achievement `json:"catalog"`
}

type DailyLoginResponse struct {
	Claimed bool `json:"claimed"`
	Points  int  `json:"points"`
}
