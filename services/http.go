package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/pup-picks/pawmatch_api/services/handlers"
	"github.com/pup-picks/pawmatch_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	jwtSvc       *JWTService
	userSvc      *UserService
	toySvc       *ToyService
	challengeSvc *ChallengeService
	statsSvc     *StatsService
	cartSvc      *CartService
	mediaSvc     *MediaService
	monitorSvc   *MonitoringService
	rateLimitSvc *RateLimitService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.toySvc = svc.Service(TOY_SVC).(*ToyService)
	svc.challengeSvc = svc.Service(CHALLENGE_SVC).(*ChallengeService)
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)
	svc.cartSvc = svc.Service(CART_SVC).(*CartService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.monitorSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitorSvc))

	app.Get("/ping", svc.ping)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(nil, "Page not found")
	})

	svc.server = app

	log.WithField("port", svc.port).Info("HTTP server starting")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc)
	toyHandler := handlers.NewToyHandler(svc.toySvc)
	challengeHandler := handlers.NewChallengeHandler(svc.challengeSvc, svc.statsSvc)
	statsHandler := handlers.NewStatsHandler(svc.statsSvc)
	cartHandler := handlers.NewCartHandler(svc.cartSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.userSvc, svc.jwtSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Post("/register", svc.rateLimitSvc.RateLimit("register"), authHandler.Register)
	v1.Post("/login", svc.rateLimitSvc.RateLimit("login"), authHandler.Login)

	// Catalog reads work anonymously; a valid token personalizes ranking.
	v1.Get("/toys", svc.authSvc.OptionalAuth(), toyHandler.ListToys)
	v1.Get("/toys/featured", toyHandler.GetFeaturedToy)
	v1.Get("/toys/:toyId", svc.authSvc.OptionalAuth(), toyHandler.GetToy)
	v1.Get("/toys/:toyId/reviews", toyHandler.GetReviews)
	v1.Get("/leaderboard", leaderboardHandler.GetLeaderboard)

	authed := v1.Group("", svc.authSvc.RequiredAuth())

	authed.Get("/user/profile", userHandler.GetProfile)
	authed.Get("/dog", userHandler.GetDogProfile)
	authed.Put("/dog", userHandler.SaveDogProfile)
	authed.Post("/dog/photo", mediaHandler.UploadDogPhoto)

	authed.Post("/swipes", challengeHandler.RecordSwipe)
	authed.Get("/challenges", challengeHandler.GetChallenges)
	authed.Post("/wheel/spin", svc.rateLimitSvc.UserRateLimit("spin"), challengeHandler.Spin)
	authed.Post("/rewards/:rewardId/use", challengeHandler.UseReward)
	authed.Post("/toys/:toyId/view", challengeHandler.RecordViewDetails)
	authed.Post("/toys/:toyId/reviews", toyHandler.AddReview)

	authed.Get("/stats", statsHandler.GetStats)
	authed.Post("/stats/daily-login", statsHandler.ClaimDailyLogin)

	authed.Get("/cart", cartHandler.GetCart)
	authed.Post("/cart", cartHandler.AddItem)
	authed.Post("/cart/checkout", cartHandler.Checkout)
	authed.Delete("/cart/:toyId", cartHandler.RemoveItem)
	authed.Get("/orders", cartHandler.GetOrders)
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= http.StatusInternalServerError {
			log.WithError(appErr.Err).WithField("path", c.Path()).Error(appErr.Message)
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	return shared.ResponseInternalError(c, err)
}
