package dto

import (
	"time"

	"github.com/pup-picks/pawmatch_api/model"
)

// Badge is the coarse match label shown on a toy card.
type Badge struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type ToyResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Category    string   `json:"category"`
	Durability  string   `json:"durability,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	PlayStyles  []string `json:"play_styles,omitempty"`
	MatchScore  int      `json:"match_score"`
	MatchBadge  *Badge   `json:"match_badge,omitempty"`
}

func NewToyResponse(toy *model.Toy) ToyResponse {
	return ToyResponse{
		ID:          toy.ID,
		Name:        toy.Name,
		Description: toy.Description,
		ImageURL:    toy.ImageURL,
		Price:       toy.Price,
		Rating:      toy.Rating,
		ReviewCount: toy.ReviewCount,
		Category:    toy.Category,
		Durability:  toy.Durability,
		Sizes:       toy.SizeList(),
		PlayStyles:  toy.PlayStyleList(),
	}
}

type ToyListResponse struct {
	Toys  []ToyResponse `json:"toys"`
	Total int           `json:"total"`
}

type FeaturedToyResponse struct {
	Toy             ToyResponse `json:"toy"`
	DiscountPercent int         `json:"discount_percent"`
	DiscountedPrice float64     `json:"discounted_price"`
	FeaturedDate    string      `json:"featured_date"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

func (r ReviewRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	ToyID     uint      `json:"toy_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
