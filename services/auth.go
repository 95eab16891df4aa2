package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/services/repositories"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	context.DefaultService

	sqlSvc *SqliteService
	jwtSvc *JWTService

	userRepo *repositories.UserRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Validation failed")
	}

	if exists, err := svc.userRepo.UsernameExists(req.Username); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	} else if exists {
		return nil, shared.NewConflictError(nil, "Username already taken")
	}

	if exists, err := svc.userRepo.EmailExists(req.Email); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	} else if exists {
		return nil, shared.NewConflictError(nil, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var referredBy string
	if req.ReferralCode != "" {
		referrer, err := svc.userRepo.GetUserByReferralCode(strings.ToUpper(req.ReferralCode))
		if err == nil {
			referredBy = referrer.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svc.sqlSvc.HandleError(err)
		}
		// An unknown referral code does not block signup.
	}

	user := &model.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		Password:     string(hashed),
		ReferralCode: generateReferralCode(req.Username),
		ReferredBy:   referredBy,
	}

	user, err = svc.userRepo.CreateUser(user)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")

	return &dto.RegisterResponse{
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		ReferralCode: user.ReferralCode,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Validation failed")
	}

	user, err := svc.userRepo.GetUserByEmailOrUsername(req.EmailOrUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	user.LastLogin = time.Now()
	if err := svc.userRepo.UpdateUser(user); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to update last login")
	}

	pair, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		TokenPair: *pair,
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}

// RequiredAuth rejects requests without a valid bearer token.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if userID == "" {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid user ID in token")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}

// OptionalAuth sets the user id into locals when a valid token is present
// and lets the request through either way.
func (svc *AuthService) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			if token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader); err == nil {
				if userID, err := svc.jwtSvc.VerifyJWTToken(token); err == nil && userID != "" {
					c.Locals(shared.UserID, userID)
				}
			}
		}
		return c.Next()
	}
}

// generateReferralCode builds codes like BUD3F9A2C: a 3-char username
// prefix plus 6 random hex chars.
func generateReferralCode(username string) string {
	prefix := strings.ToUpper(username)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	random := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return prefix + random
}
