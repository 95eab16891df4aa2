package dto

import (
	"time"

	"github.com/pup-picks/pawmatch_api/model"
)

type UserProfileResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ReferralCode string    `json:"referral_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type UpdateDogProfileRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=50"`
	Size          string     `json:"size" validate:"omitempty,oneof=small medium large giant"`
	ChewStrength  string     `json:"chew_strength" validate:"omitempty,oneof=gentle moderate aggressive destroyer"`
	PlayStyle     string     `json:"play_style" validate:"omitempty,oneof=fetch tug cuddle puzzle"`
	ActivityLevel string     `json:"activity_level" validate:"omitempty,oneof=low moderate high very_high"`
	Birthday      *time.Time `json:"birthday"`
}

func (r UpdateDogProfileRequest) Validate() error {
	return GetValidator().Struct(r)
}

type DogProfileResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Size          string     `json:"size,omitempty"`
	ChewStrength  string     `json:"chew_strength,omitempty"`
	PlayStyle     string     `json:"play_style,omitempty"`
	ActivityLevel string     `json:"activity_level,omitempty"`
	PhotoURL      string     `json:"photo_url,omitempty"`
	Birthday      *time.Time `json:"birthday,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewDogProfileResponse(profile *model.DogProfile) *DogProfileResponse {
	return &DogProfileResponse{
		ID:            profile.ID,
		Name:          profile.Name,
		Size:          profile.Size,
		ChewStrength:  profile.ChewStrength,
		PlayStyle:     profile.PlayStyle,
		ActivityLevel: profile.ActivityLevel,
		PhotoURL:      profile.PhotoURL,
		Birthday:      profile.Birthday,
		UpdatedAt:     profile.UpdatedAt,
	}
}

type MediaUploadResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	Size       int64  `json:"size"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Streak   int    `json:"streak"`
}

type LeaderboardResponse struct {
	Period      string             `json:"period"`
	Entries     []LeaderboardEntry `json:"entries"`
	CurrentRank int                `json:"current_rank,omitempty"`
}
