package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/model"
	"gorm.io/gorm"
)

// StatsRepository persists swipe/purchase totals and achievement unlocks.
type StatsRepository struct {
	BaseRepository
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *StatsRepository) GetStats(userID string) (*model.UserStats, error) {
	var stats model.UserStats
	if err := ds.db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (ds *StatsRepository) SaveStats(stats *model.UserStats) (*model.UserStats, error) {
	if stats.ID == "" {
		id, _ := uuid.NewV7()
		stats.ID = id.String()
		stats.CreatedAt = time.Now()
	}
	stats.UpdatedAt = time.Now()
	if err := ds.db.Save(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// GetTopByPoints returns stats rows ordered by points for the leaderboard.
func (ds *StatsRepository) GetTopByPoints(limit int) ([]model.UserStats, error) {
	var rows []model.UserStats
	if err := ds.db.Order("points DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetPointsRank returns the 1-based rank of the user's points total.
func (ds *StatsRepository) GetPointsRank(points int) (int, error) {
	var higher int64
	if err := ds.db.Model(&model.UserStats{}).Where("points > ?", points).Count(&higher).Error; err != nil {
		return 0, err
	}
	return int(higher) + 1, nil
}
