package main

import (
	"github.com/pup-picks/pawmatch_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.SqliteService{},
		&services.RedisService{},
		&services.JWTService{},
		&services.MinIOService{},
		&services.MonitoringService{},
		&services.RateLimitService{},

		&services.MatchService{},
		&services.ChallengeService{},
		&services.StatsService{},
		&services.AuthService{},
		&services.UserService{},
		&services.ToyService{},
		&services.CartService{},
		&services.MediaService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
