package services

import (
	"context"
	"errors"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/services/repositories"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const leaderboardCacheTTL = 60 * time.Second

// UserService owns account profiles, the per-account dog profile and the
// points leaderboard.
type UserService struct {
	appContext.DefaultService

	sqlSvc   *SqliteService
	redisSvc *RedisService

	userRepo  *repositories.UserRepository
	statsRepo *repositories.StatsRepository
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	svc.statsRepo = repositories.NewStatsRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *UserService) GetUserProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.UserProfileResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		ReferralCode: user.ReferralCode,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (svc *UserService) GetDogProfile(userID string) (*dto.DogProfileResponse, error) {
	profile, err := svc.userRepo.GetDogProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(nil, "No dog profile yet")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}
	return dto.NewDogProfileResponse(profile), nil
}

// SaveDogProfile creates the profile on first save and mutates it in
// place afterwards; accounts have at most one.
func (svc *UserService) SaveDogProfile(userID string, req dto.UpdateDogProfileRequest) (*dto.DogProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Validation failed")
	}

	profile, err := svc.userRepo.GetDogProfile(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.sqlSvc.HandleError(err)
		}
		profile = &model.DogProfile{UserID: userID}
	}

	profile.Name = req.Name
	profile.Size = req.Size
	profile.ChewStrength = req.ChewStrength
	profile.PlayStyle = req.PlayStyle
	profile.ActivityLevel = req.ActivityLevel
	profile.Birthday = req.Birthday

	profile, err = svc.userRepo.SaveDogProfile(profile)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"dog":     profile.Name,
	}).Info("Dog profile saved")

	return dto.NewDogProfileResponse(profile), nil
}

// SetDogPhoto stores an uploaded photo URL on the profile.
func (svc *UserService) SetDogPhoto(userID, photoURL string) (*dto.DogProfileResponse, error) {
	profile, err := svc.userRepo.GetDogProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(nil, "Create a dog profile before uploading a photo")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	profile.PhotoURL = photoURL
	profile, err = svc.userRepo.SaveDogProfile(profile)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return dto.NewDogProfileResponse(profile), nil
}

// GetLeaderboard ranks accounts by lifetime points. Entries are cached
// briefly; the requesting user's rank is looked up fresh.
func (svc *UserService) GetLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error) {
	cacheKey := "pawmatch:leaderboard:all_time"

	var entries []dto.LeaderboardEntry
	if !svc.redisSvc.GetJSON(context.Background(), cacheKey, &entries) {
		rows, err := svc.statsRepo.GetTopByPoints(limit)
		if err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}

		entries = make([]dto.LeaderboardEntry, 0, len(rows))
		for i, row := range rows {
			user, err := svc.userRepo.GetUser(row.UserID)
			if err != nil {
				continue
			}
			entries = append(entries, dto.LeaderboardEntry{
				Rank:     i + 1,
				Username: user.Username,
				Points:   row.Points,
				Streak:   row.CurrentStreak,
			})
		}

		svc.redisSvc.SetJSON(context.Background(), cacheKey, entries, leaderboardCacheTTL)
	}

	resp := &dto.LeaderboardResponse{Period: "all_time", Entries: entries}

	if currentUserID != "" {
		if stats, err := svc.statsRepo.GetStats(currentUserID); err == nil {
			if rank, err := svc.statsRepo.GetPointsRank(stats.Points); err == nil {
				resp.CurrentRank = rank
			}
		}
	}

	return resp, nil
}
