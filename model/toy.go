package model

import (
	"encoding/json"
	"time"
)

// Toy is immutable reference data seeded at startup. Sizes and PlayStyles
// are JSON-encoded string sets, decoded on demand by the accessors below.
type Toy struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       float64         `json:"price" gorm:"not null"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	Category    string          `json:"category" gorm:"index"`
	Durability  string          `json:"durability"`
	Sizes       json.RawMessage `json:"sizes"`
	PlayStyles  json.RawMessage `json:"play_styles"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t *Toy) SizeList() []string {
	var sizes []string
	if len(t.Sizes) == 0 {
		return sizes
	}
	_ = json.Unmarshal(t.Sizes, &sizes)
	return sizes
}

func (t *Toy) PlayStyleList() []string {
	var styles []string
	if len(t.PlayStyles) == 0 {
		return styles
	}
	_ = json.Unmarshal(t.PlayStyles, &styles)
	return styles
}

func (t *Toy) SetSizes(sizes []string) error {
	data, err := json.Marshal(sizes)
	if err != nil {
		return err
	}
	t.Sizes = data
	return nil
}

func (t *Toy) SetPlayStyles(styles []string) error {
	data, err := json.Marshal(styles)
	if err != nil {
		return err
	}
	t.PlayStyles = data
	return nil
}

type Review struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ToyID     uint      `json:"toy_id" gorm:"index:idx_reviews_toy_user,unique;not null"`
	UserID    string    `json:"user_id" gorm:"index:idx_reviews_toy_user,unique;not null"`
	Username  string    `json:"username" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
