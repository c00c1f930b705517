package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/edu_api/services"
	"github.com/rs/zerolog/log"
)

// @title EduPlatform API
// @version 1.0
// @description Gamified K-12 learning API: accounts, progress ledger, games, exams and rankings.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file found, using system environment variables")
	}

	ctx, err := context.NewCtx(
		&services.MonitoringService{},
		&services.DatabaseService{},
		&services.RedisService{},
		&services.JWTService{},
		&services.EmailService{},
		&services.EventService{},
		&services.MinIOService{},
		&services.RateLimitService{},

		&services.StudentService{},
		&services.AuthService{},
		&services.GameService{},
		&services.ExamService{},
		&services.UserService{},
		&services.AnalyticsService{},
		&services.AdminService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service exited")
		return
	}
}
