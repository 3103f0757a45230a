package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/config"
	"github.com/intervue/platform-api/internal/domain/fiber/handler"
	applogger "github.com/intervue/platform-api/internal/logger"
	"github.com/intervue/platform-api/internal/middleware"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/repository"
	"github.com/intervue/platform-api/internal/service"
	"github.com/intervue/platform-api/internal/usecase"
	"github.com/intervue/platform-api/internal/util"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zlog := applogger.New(appConfig.LogLevel, appConfig.LogFormat)
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: util.ErrorHandler,
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	rdb := service.NewRedisClient(config.LoadRedisConfig())
	sessions := service.NewSessionStore(rdb, 24*time.Hour)
	notifier := service.NewWebhookNotifier(config.LoadNotifierConfig(), zlog)

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	requirementRepo := repository.NewRequirementRepository(db)
	interviewerRepo := repository.NewInterviewerRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	demoRepo := repository.NewDemoRequestRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, orgRepo, sessions, zlog)
	requirementUC := usecase.NewRequirementUsecase(requirementRepo, orgRepo, notifier, zlog)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, candidateRepo, interviewerRepo, requirementRepo, notifier, zlog)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, requirementRepo, notifier, zlog)
	orgUC := usecase.NewOrganizationUsecase(orgRepo, userRepo, requirementRepo, interviewRepo, notifier, zlog)
	interviewerUC := usecase.NewInterviewerUsecase(interviewerRepo, interviewRepo, orgRepo, notifier, zlog)
	skillUC := usecase.NewSkillUsecase(skillRepo, notifier)
	demoUC := usecase.NewDemoRequestUsecase(demoRepo, notifier, zlog)
	portalUC := usecase.NewPortalUsecase(candidateRepo, interviewerRepo, interviewUC, interviewRepo)

	// Session resolution runs before every route; the role gates sit on the
	// route trees in MountRoutes.
	app.Use(middleware.Sessions(sessions, userRepo))

	handler.MountRoutes(app, handler.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Interviews:   handler.NewInterviewHandler(interviewUC),
		Requirements: handler.NewRequirementHandler(requirementUC),
		Candidates:   handler.NewCandidateHandler(candidateUC),
		Companies:    handler.NewCompanyHandler(orgUC),
		Interviewers: handler.NewInterviewerHandler(interviewerUC),
		Skills:       handler.NewSkillHandler(skillUC),
		DemoRequests: handler.NewDemoRequestHandler(demoUC),
		Portal:       handler.NewPortalHandler(portalUC, orgUC, interviewerUC, requirementUC),
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// migrasi tabel
	err = db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.Requirement{},
		&model.Interviewer{},
		&model.Candidate{},
		&model.Interview{},
		&model.Skill{},
		&model.DemoRequest{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
