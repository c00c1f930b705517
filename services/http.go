package services

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	docs "github.com/lac-hong-legacy/edu_api/docs"
	"github.com/lac-hong-legacy/edu_api/middleware"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/services/handlers"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	studentSvc    *StudentService
	gameSvc       *GameService
	examSvc       *ExamService
	adminSvc      *AdminService
	analyticsSvc  *AnalyticsService
	userSvc       *UserService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	port int
	app  *fiber.App
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
	svc.studentSvc = svc.Service(STUDENT_SVC).(*StudentService)
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	svc.examSvc = svc.Service(EXAM_SVC).(*ExamService)
	svc.adminSvc = svc.Service(ADMIN_SVC).(*AdminService)
	svc.analyticsSvc = svc.Service(ANALYTICS_SVC).(*AnalyticsService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	if monitoringSvc, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitoringSvc = monitoringSvc
	}

	svc.app = svc.newApp()

	log.WithField("port", svc.port).Info("HTTP server started")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      SERVICE_NAME,
		JSONEncoder:  shared.JSONMarshal,
		JSONDecoder:  shared.JSONUnmarshal,
		ErrorHandler: shared.ErrorHandler,
		BodyLimit:    4 * 1024 * 1024,
	})

	docs.SwaggerInfo.BasePath = ""
	app.Use(recover.New())
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if svc.monitoringSvc != nil {
		app.Use(MonitoringMiddleware(svc.monitoringSvc))
	}

	//Validation endpoints
	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(nil, "Route not found")
	})

	return app
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	studentHandler := handlers.NewStudentHandler(svc.studentSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.studentSvc, svc.gameSvc)
	gameHandler := handlers.NewGameHandler(svc.gameSvc)
	examHandler := handlers.NewExamHandler(svc.examSvc)
	adminHandler := handlers.NewAdminHandler(svc.adminSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.analyticsSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc)

	requireAuth := middleware.RequiredAuth(svc.authSvc)
	studentOnly := middleware.RequireRole(model.RoleStudent)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	staffOnly := middleware.RequireRole(model.RoleTeacher, model.RoleAdmin)

	v1 := app.Group("/api/v1", middleware.RateLimit(svc.rateLimitSvc, LimitGeneral))
	v1.Get("/ping", svc.ping)

	auth := v1.Group("/auth")
	auth.Post("/register", middleware.RateLimit(svc.rateLimitSvc, LimitRegister), authHandler.Register)
	auth.Post("/login", middleware.RateLimit(svc.rateLimitSvc, LimitLogin), authHandler.Login)
	auth.Get("/verify", requireAuth, authHandler.Verify)

	students := v1.Group("/students")
	students.Get("/leaderboard", leaderboardHandler.GetStudentLeaderboard)
	students.Post("/progress", requireAuth, studentOnly, middleware.RateLimit(svc.rateLimitSvc, LimitProgress), studentHandler.RecordProgress)
	students.Get("/progress", requireAuth, studentOnly, studentHandler.GetProgress)
	students.Get("/achievements", requireAuth, studentOnly, studentHandler.GetAchievements)

	users := v1.Group("/users", requireAuth)
	users.Get("/me", userHandler.GetUserProfile)
	users.Post("/me/avatar", userHandler.UploadAvatar)

	games := v1.Group("/games")
	games.Get("/", gameHandler.ListGames)
	games.Get("/:id", gameHandler.GetGame)
	games.Get("/:id/leaderboard", leaderboardHandler.GetGameLeaderboard)
	games.Post("/:id/start", requireAuth, studentOnly, gameHandler.StartGame)
	games.Post("/:id/submit", requireAuth, studentOnly, gameHandler.SubmitGame)

	exams := v1.Group("/exams", requireAuth, studentOnly)
	exams.Get("/:subject", examHandler.GetPaper)
	exams.Post("/:subject/submit", examHandler.Submit)

	admin := v1.Group("/admin", requireAuth, adminOnly)
	admin.Get("/students", adminHandler.GetStudents)
	admin.Post("/students", adminHandler.AddStudent)
	admin.Patch("/students/:id/status", adminHandler.SetStudentStatus)
	admin.Get("/games", adminHandler.GetGames)
	admin.Get("/stats", adminHandler.GetStats)
	admin.Get("/activity", adminHandler.GetActivity)

	analytics := v1.Group("/analytics", requireAuth, staffOnly)
	analytics.Get("/platform", analyticsHandler.GetPlatform)
	analytics.Get("/students/:id", analyticsHandler.GetStudentPerformance)
	analytics.Get("/games", analyticsHandler.GetGames)
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}
