package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/services/repositories"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AchievementCatalog gates unlocks on the stat counters. Streak
// achievements check the longest streak too, so a broken streak does not
// re-lock them.
var AchievementCatalog = []model.Achievement{
	{ID: "first_swipe", Name: "First Swipe", Description: "Swipe your first toy", Icon: "🐾", Requirement: "swipes", Threshold: 1},
	{ID: "getting_started", Name: "Getting Started", Description: "Swipe 10 toys", Icon: "🎯", Requirement: "swipes", Threshold: 10},
	{ID: "toy_explorer", Name: "Toy Explorer", Description: "Swipe 50 toys", Icon: "🔍", Requirement: "swipes", Threshold: 50},
	{ID: "toy_master", Name: "Toy Master", Description: "Swipe 100 toys", Icon: "🏆", Requirement: "swipes", Threshold: 100},
	{ID: "streak_starter", Name: "Streak Starter", Description: "3-day streak", Icon: "🔥", Requirement: "streak", Threshold: 3},
	{ID: "week_warrior", Name: "Week Warrior", Description: "7-day streak", Icon: "⭐", Requirement: "streak", Threshold: 7},
	{ID: "month_master", Name: "Month Master", Description: "30-day streak", Icon: "👑", Requirement: "streak", Threshold: 30},
	{ID: "first_purchase", Name: "First Purchase", Description: "Buy your first toy", Icon: "🛒", Requirement: "purchases", Threshold: 1},
	{ID: "big_spender", Name: "Big Spender", Description: "Spend $100+", Icon: "💎", Requirement: "spent", Threshold: 100},
}

const (
	pointsPerSwipe       = 1
	pointsPerAddToCart   = 10
	pointsPerPurchase    = 50
	pointsPerAchievement = 10
	pointsDailyLogin     = 5
)

// StatsService accumulates swipe/purchase totals, maintains day-adjacent
// streaks and unlocks achievements. Like the challenge tracker it threads
// state values through pure helpers with an injectable clock.
type StatsService struct {
	context.DefaultService

	sqlSvc *SqliteService

	statsRepo *repositories.StatsRepository

	now func() time.Time
}

const STATS_SVC = "stats_svc"

func (svc StatsService) Id() string {
	return STATS_SVC
}

func (svc *StatsService) Configure(ctx *context.Context) error {
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *StatsService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.statsRepo = repositories.NewStatsRepository(svc.sqlSvc.Db())
	return nil
}

// applySwipe updates totals, the streak and points for one swipe on the
// given day. Streaks grow only on consecutive days and reset otherwise;
// repeat swipes on the same day leave the streak alone.
func applySwipe(stats model.UserStats, liked bool, today, yesterday string) model.UserStats {
	switch stats.LastSwipeDate {
	case today:
		// Streak already counted today.
	case yesterday:
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	stats.TotalSwipes++
	if liked {
		stats.TotalLikes++
	} else {
		stats.TotalSkips++
	}
	stats.Points += pointsPerSwipe
	stats.LastSwipeDate = today

	return stats
}

// unlockAchievements returns stats with any newly met achievements
// appended plus the unlocked catalog entries. Each unlock pays a small
// point bonus and happens at most once.
func unlockAchievements(stats model.UserStats) (model.UserStats, []model.Achievement) {
	owned := make(map[string]bool)
	ids := stats.AchievementIDs()
	for _, id := range ids {
		owned[id] = true
	}

	var unlocked []model.Achievement
	for _, achievement := range AchievementCatalog {
		if owned[achievement.ID] {
			continue
		}

		met := false
		switch achievement.Requirement {
		case "swipes":
			met = float64(stats.TotalSwipes) >= achievement.Threshold
		case "streak":
			met = float64(stats.CurrentStreak) >= achievement.Threshold ||
				float64(stats.LongestStreak) >= achievement.Threshold
		case "purchases":
			met = float64(stats.TotalPurchases) >= achievement.Threshold
		case "spent":
			met = stats.TotalSpent >= achievement.Threshold
		}

		if met {
			ids = append(ids, achievement.ID)
			unlocked = append(unlocked, achievement)
		}
	}

	if len(unlocked) > 0 {
		stats.Points += len(unlocked) * pointsPerAchievement
		if err := stats.SetAchievementIDs(ids); err != nil {
			log.WithError(err).Warn("Failed to encode achievement ids")
		}
	}

	return stats, unlocked
}

func (svc *StatsService) loadStats(userID string) (*model.UserStats, error) {
	stats, err := svc.statsRepo.GetStats(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.sqlSvc.HandleError(err)
		}
		stats = &model.UserStats{UserID: userID}
		if err := stats.SetAchievementIDs([]string{}); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func (svc *StatsService) save(stats *model.UserStats) error {
	if _, err := svc.statsRepo.SaveStats(stats); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// RecordSwipe applies one swipe and returns any achievements it unlocked.
func (svc *StatsService) RecordSwipe(userID string, liked bool) ([]model.Achievement, error) {
	stats, err := svc.loadStats(userID)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	updated := applySwipe(*stats, liked, dayKey(now), dayKey(now.AddDate(0, 0, -1)))
	updated, unlocked := unlockAchievements(updated)

	*stats = updated
	if err := svc.save(stats); err != nil {
		return nil, err
	}

	return unlocked, nil
}

// RecordAddToCart pays the add-to-cart point bonus.
func (svc *StatsService) RecordAddToCart(userID string) error {
	stats, err := svc.loadStats(userID)
	if err != nil {
		return err
	}

	stats.Points += pointsPerAddToCart
	return svc.save(stats)
}

// RecordPurchase applies one checkout and returns newly unlocked
// achievements.
func (svc *StatsService) RecordPurchase(userID string, amount float64) ([]model.Achievement, error) {
	stats, err := svc.loadStats(userID)
	if err != nil {
		return nil, err
	}

	updated := *stats
	updated.TotalPurchases++
	updated.TotalSpent += amount
	updated.Points += pointsPerPurchase
	updated, unlocked := unlockAchievements(updated)

	*stats = updated
	if err := svc.save(stats); err != nil {
		return nil, err
	}

	return unlocked, nil
}

// ClaimDailyLogin pays the login bonus once per calendar day.
func (svc *StatsService) ClaimDailyLogin(userID string) (*dto.DailyLoginResponse, error) {
	stats, err := svc.loadStats(userID)
	if err != nil {
		return nil, err
	}

	today := dayKey(svc.now())
	if stats.DailyLoginClaimed == today {
		return &dto.DailyLoginResponse{Claimed: false, Points: stats.Points}, nil
	}

	stats.Points += pointsDailyLogin
	stats.DailyLoginClaimed = today
	if err := svc.save(stats); err != nil {
		return nil, err
	}

	return &dto.DailyLoginResponse{Claimed: true, Points: stats.Points}, nil
}

// GetStats returns the counters plus unlocked achievements and the full
// catalog for display.
func (svc *StatsService) GetStats(userID string) (*dto.StatsResponse, error) {
	stats, err := svc.loadStats(userID)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool)
	for _, id := range stats.AchievementIDs() {
		owned[id] = true
	}

	unlocked := make([]model.Achievement, 0, len(owned))
	for _, achievement := range AchievementCatalog {
		if owned[achievement.ID] {
			unlocked = append(unlocked, achievement)
		}
	}

	return &dto.StatsResponse{
		TotalSwipes:    stats.TotalSwipes,
		TotalLikes:     stats.TotalLikes,
		TotalSkips:     stats.TotalSkips,
		Points:         stats.Points,
		TotalPurchases: stats.TotalPurchases,
		TotalSpent:     stats.TotalSpent,
		CurrentStreak:  stats.CurrentStreak,
		LongestStreak:  stats.LongestStreak,
		LastSwipeDate:  stats.LastSwipeDate,
		Unlocked:       unlocked,
		Catalog:        AchievementCatalog,
	}, nil
}
