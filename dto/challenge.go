package dto

import "github.com/pup-picks/pawmatch_api/model"

// ChallengeSnapshot is the read-only view of a user's gamification state
// handed to the rendering layer.
type ChallengeSnapshot struct {
	DailyChallenges []model.Challenge `json:"daily_challenges"`
	AvailableSpins  int               `json:"available_spins"`
	TotalPoints     int               `json:"total_points"`
	Rewards         []model.Reward    `json:"rewards"`
	IncompleteCount int               `json:"incomplete_count"`
	LastRefresh     string            `json:"last_refresh"`
}

type SwipeEventRequest struct {
	Liked bool `json:"liked"`
}

type SpinResponse struct {
	// Prize is nil when no spins were available.
	Prize          *model.PrizeTier `json:"prize"`
	AvailableSpins int              `json:"available_spins"`
	TotalPoints    int              `json:"total_points"`
}
