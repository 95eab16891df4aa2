package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/model"
	"gorm.io/gorm"
)

// ChallengeRepository persists the per-user gamification state blob.
type ChallengeRepository struct {
	BaseRepository
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ChallengeRepository) GetState(userID string) (*model.ChallengeState, error) {
	var state model.ChallengeState
	if err := ds.db.Where("user_id = ?", userID).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (ds *ChallengeRepository) SaveState(state *model.ChallengeState) (*model.ChallengeState, error) {
	if state.ID == "" {
		id, _ := uuid.NewV7()
		state.ID = id.String()
		state.CreatedAt = time.Now()
	}
	state.UpdatedAt = time.Now()
	if err := ds.db.Save(state).Error; err != nil {
		return nil, err
	}
	return state, nil
}
