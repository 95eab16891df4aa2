package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/model"
	"gorm.io/gorm"
)

// ToyRepository handles the immutable toy catalog and user reviews.
type ToyRepository struct {
	BaseRepository
}

func NewToyRepository(db *gorm.DB) *ToyRepository {
	return &ToyRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ToyRepository) GetToys() ([]model.Toy, error) {
	var toys []model.Toy
	if err := ds.db.Order("id").Find(&toys).Error; err != nil {
		return nil, err
	}
	return toys, nil
}

func (ds *ToyRepository) GetToy(toyID uint) (*model.Toy, error) {
	var toy model.Toy
	if err := ds.db.Where("id = ?", toyID).First(&toy).Error; err != nil {
		return nil, err
	}
	return &toy, nil
}

// UpdateToyRating refreshes the denormalized review aggregate on a toy.
func (ds *ToyRepository) UpdateToyRating(toyID uint, rating float64, reviewCount int) error {
	return ds.db.Model(&model.Toy{}).Where("id = ?", toyID).
		Updates(map[string]interface{}{"rating": rating, "review_count": reviewCount}).Error
}

func (ds *ToyRepository) GetReviewsForToy(toyID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := ds.db.Where("toy_id = ?", toyID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (ds *ToyRepository) GetUserReview(toyID uint, userID string) (*model.Review, error) {
	var review model.Review
	if err := ds.db.Where("toy_id = ? AND user_id = ?", toyID, userID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (ds *ToyRepository) SaveReview(review *model.Review) (*model.Review, error) {
	if review.ID == "" {
		id, _ := uuid.NewV7()
		review.ID = id.String()
		review.CreatedAt = time.Now()
	}
	review.UpdatedAt = time.Now()
	if err := ds.db.Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
