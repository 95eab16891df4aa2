package model

import (
	"encoding/json"
	"time"
)

// Challenge is one day-scoped task inside a user's daily set. Progress and
// Completed are the only mutable fields; the rest comes from the catalog.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Target      int    `json:"target"`
	Reward      int    `json:"reward"`
	TrackEvent  string `json:"track_event"`
	Progress    int    `json:"progress"`
	Completed   bool   `json:"completed"`
}

// Reward is a non-point prize won from the wheel. Records are retained
// after use; Used only flips to true.
type Reward struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Value  float64   `json:"value"`
	Label  string    `json:"label"`
	Rarity string    `json:"rarity"`
	Used   bool      `json:"used"`
	WonAt  time.Time `json:"won_at"`
}

// PrizeTier is one weighted entry in the spin wheel's distribution table.
type PrizeTier struct {
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Chance float64 `json:"chance"`
	Rarity string  `json:"rarity"`
}

// ChallengeState is the persisted per-user gamification blob. The daily
// set and reward history are stored as JSON columns.
type ChallengeState struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	UserID          string          `json:"user_id" gorm:"uniqueIndex;not null"`
	DailyChallenges json.RawMessage `json:"daily_challenges" gorm:"not null"`
	AvailableSpins  int             `json:"available_spins" gorm:"not null"`
	TotalPoints     int             `json:"total_points" gorm:"not null"`
	Rewards         json.RawMessage `json:"rewards" gorm:"not null"`
	LastRefresh     string          `json:"last_refresh" gorm:"not null"` // YYYY-MM-DD
	CreatedAt       time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ChallengeStateData is the decoded, value-semantics form of ChallengeState
// that the tracker and wheel operate on.
type ChallengeStateData struct {
	DailyChallenges []Challenge `json:"daily_challenges"`
	AvailableSpins  int         `json:"available_spins"`
	TotalPoints     int         `json:"total_points"`
	Rewards         []Reward    `json:"rewards"`
	LastRefresh     string      `json:"last_refresh"`
}

// Data decodes the JSON columns. A decode failure is returned so callers
// can fall back to a fresh state instead of propagating it.
func (cs *ChallengeState) Data() (ChallengeStateData, error) {
	data := ChallengeStateData{
		AvailableSpins: cs.AvailableSpins,
		TotalPoints:    cs.TotalPoints,
		LastRefresh:    cs.LastRefresh,
	}

	if len(cs.DailyChallenges) > 0 {
		if err := json.Unmarshal(cs.DailyChallenges, &data.DailyChallenges); err != nil {
			return ChallengeStateData{}, err
		}
	}
	if len(cs.Rewards) > 0 {
		if err := json.Unmarshal(cs.Rewards, &data.Rewards); err != nil {
			return ChallengeStateData{}, err
		}
	}

	return data, nil
}

// SetData encodes data back into the JSON columns.
func (cs *ChallengeState) SetData(data ChallengeStateData) error {
	challenges, err := json.Marshal(data.DailyChallenges)
	if err != nil {
		return err
	}
	rewards, err := json.Marshal(data.Rewards)
	if err != nil {
		return err
	}

	cs.DailyChallenges = challenges
	cs.Rewards = rewards
	cs.AvailableSpins = data.AvailableSpins
	cs.TotalPoints = data.TotalPoints
	cs.LastRefresh = data.LastRefresh
	return nil
}
