package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	RequiredAuth() fiber.Handler
	OptionalAuth() fiber.Handler
}

type JWTServiceInterface interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyJWTToken(token string) (string, error)
}

type UserServiceInterface interface {
	GetUserProfile(userID string) (*dto.UserProfileResponse, error)
	GetDogProfile(userID string) (*dto.DogProfileResponse, error)
	SaveDogProfile(userID string, req dto.UpdateDogProfileRequest) (*dto.DogProfileResponse, error)
	GetLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error)
}

type ToyServiceInterface interface {
	ListToys(userID string) (*dto.ToyListResponse, error)
	GetToy(toyID uint, userID string) (*dto.ToyResponse, error)
	FeaturedToy() (*dto.FeaturedToyResponse, error)
	GetReviews(toyID uint) (*dto.ReviewListResponse, error)
	AddReview(userID string, toyID uint, req dto.ReviewRequest) (*dto.ReviewResponse, error)
}

type ChallengeServiceInterface interface {
	GetSnapshot(userID string) (*dto.ChallengeSnapshot, error)
	TrackSwipe(userID string, liked bool) (*dto.ChallengeSnapshot, error)
	TrackViewDetails(userID string) (*dto.ChallengeSnapshot, error)
	Spin(userID string) (*dto.SpinResponse, error)
	UseReward(userID, rewardID string) (*dto.ChallengeSnapshot, error)
}

type StatsServiceInterface interface {
	GetStats(userID string) (*dto.StatsResponse, error)
	RecordSwipe(userID string, liked bool) ([]model.Achievement, error)
	ClaimDailyLogin(userID string) (*dto.DailyLoginResponse, error)
}

type CartServiceInterface interface {
	GetCart(userID string) (*dto.CartResponse, error)
	AddItem(userID string, req dto.AddCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(userID string, toyID uint) (*dto.CartResponse, error)
	Checkout(userID string) (*dto.OrderResponse, error)
	GetOrders(userID string) (*dto.OrderListResponse, error)
}

type MediaServiceInterface interface {
	UploadDogPhoto(userID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
}
