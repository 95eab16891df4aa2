package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/services/repositories"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const featuredDiscountPercent = 10

// ToyService serves the catalog ranked and decorated for the requesting
// user's dog, the daily featured pick and per-toy reviews.
type ToyService struct {
	appContext.DefaultService

	sqlSvc   *SqliteService
	redisSvc *RedisService
	matchSvc *MatchService

	toyRepo  *repositories.ToyRepository
	userRepo *repositories.UserRepository

	now func() time.Time
}

const TOY_SVC = "toy_svc"

func (svc ToyService) Id() string {
	return TOY_SVC
}

func (svc *ToyService) Configure(ctx *appContext.Context) error {
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *ToyService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.matchSvc = svc.Service(MATCH_SVC).(*MatchService)
	svc.toyRepo = repositories.NewToyRepository(svc.sqlSvc.Db())
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// dogProfileFor returns the user's dog profile, or nil for anonymous
// requests and accounts without one. A missing profile is a neutral
// signal, never an error.
func (svc *ToyService) dogProfileFor(userID string) *model.DogProfile {
	if userID == "" {
		return nil
	}
	profile, err := svc.userRepo.GetDogProfile(userID)
	if err != nil {
		return nil
	}
	return profile
}

func (svc *ToyService) decorate(toy *model.Toy, profile *model.DogProfile) dto.ToyResponse {
	resp := dto.NewToyResponse(toy)
	resp.MatchScore = svc.matchSvc.CalculateMatchScore(toy, profile)
	resp.MatchBadge = svc.matchSvc.MatchBadge(toy, profile)
	return resp
}

// ListToys returns the full catalog ordered by descending match score for
// the user's dog; without a profile the catalog order is preserved.
func (svc *ToyService) ListToys(userID string) (*dto.ToyListResponse, error) {
	toys, err := svc.toyRepo.GetToys()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	profile := svc.dogProfileFor(userID)
	sorted := svc.matchSvc.SortToysByMatch(toys, profile)

	responses := make([]dto.ToyResponse, 0, len(sorted))
	for i := range sorted {
		responses = append(responses, svc.decorate(&sorted[i], profile))
	}

	return &dto.ToyListResponse{Toys: responses, Total: len(responses)}, nil
}

func (svc *ToyService) GetToy(toyID uint, userID string) (*dto.ToyResponse, error) {
	toy, err := svc.toyRepo.GetToy(toyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(nil, "Toy not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := svc.decorate(toy, svc.dogProfileFor(userID))
	return &resp, nil
}

// FeaturedToy picks the day's featured toy deterministically from the
// catalog (day of year modulo catalog size) and applies the standing
// discount. The pick is cached until it changes anyway at midnight.
func (svc *ToyService) FeaturedToy() (*dto.FeaturedToyResponse, error) {
	now := svc.now()
	today := dayKey(now)
	cacheKey := fmt.Sprintf("pawmatch:featured:%s", today)

	var cached dto.FeaturedToyResponse
	if svc.redisSvc.GetJSON(context.Background(), cacheKey, &cached) {
		return &cached, nil
	}

	toys, err := svc.toyRepo.GetToys()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	if len(toys) == 0 {
		return nil, shared.NewNotFoundError(nil, "Catalog is empty")
	}

	featured := toys[now.YearDay()%len(toys)]
	discounted := math.Round(featured.Price*(100-featuredDiscountPercent)) / 100

	resp := &dto.FeaturedToyResponse{
		Toy:             dto.NewToyResponse(&featured),
		DiscountPercent: featuredDiscountPercent,
		DiscountedPrice: discounted,
		FeaturedDate:    today,
	}

	svc.redisSvc.SetJSON(context.Background(), cacheKey, resp, 24*time.Hour)
	return resp, nil
}

// refreshRatingAggregate recomputes the toy's denormalized rating and
// review count. Best effort: the review itself is already saved.
func (svc *ToyService) refreshRatingAggregate(toyID uint) {
	reviews, err := svc.toyRepo.GetReviewsForToy(toyID)
	if err != nil || len(reviews) == 0 {
		return
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	if err := svc.toyRepo.UpdateToyRating(toyID, avg, len(reviews)); err != nil {
		log.WithError(err).WithField("toy_id", toyID).Warn("Failed to refresh rating aggregate")
	}
}

func (svc *ToyService) GetReviews(toyID uint) (*dto.ReviewListResponse, error) {
	if _, err := svc.toyRepo.GetToy(toyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(nil, "Toy not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	reviews, err := svc.toyRepo.GetReviewsForToy(toyID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, dto.ReviewResponse{
			ID:        review.ID,
			ToyID:     review.ToyID,
			Username:  review.Username,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}

	return &dto.ReviewListResponse{Reviews: responses, Total: len(responses)}, nil
}

// AddReview writes the user's review for a toy; a second review from the
// same user updates the first.
func (svc *ToyService) AddReview(userID string, toyID uint, req dto.ReviewRequest) (*dto.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Validation failed")
	}

	if _, err := svc.toyRepo.GetToy(toyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(nil, "Toy not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	review, err := svc.toyRepo.GetUserReview(toyID, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.sqlSvc.HandleError(err)
		}
		review = &model.Review{ToyID: toyID, UserID: userID}
	}

	review.Username = user.Username
	review.Rating = req.Rating
	review.Comment = req.Comment

	review, err = svc.toyRepo.SaveReview(review)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.refreshRatingAggregate(toyID)

	return &dto.ReviewResponse{
		ID:        review.ID,
		ToyID:     review.ToyID,
		Username:  review.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}
