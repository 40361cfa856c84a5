package main

import (
	"log"

	api "linkfeed-backend/cmd/api"
	authdomain "linkfeed-backend/internal/auth/domain"
	authrepo "linkfeed-backend/internal/auth/repository"
	authusecase "linkfeed-backend/internal/auth/usecase"
	emaildelivery "linkfeed-backend/internal/email/delivery"
	emailusecase "linkfeed-backend/internal/email/usecase"
	"linkfeed-backend/internal/feed"
	settingsdelivery "linkfeed-backend/internal/settings/delivery"
	settingsdomain "linkfeed-backend/internal/settings/domain"
	settingsrepo "linkfeed-backend/internal/settings/repository"
	settingsusecase "linkfeed-backend/internal/settings/usecase"
	summarydelivery "linkfeed-backend/internal/summary/delivery"
	summarydomain "linkfeed-backend/internal/summary/domain"
	summaryrepo "linkfeed-backend/internal/summary/repository"
	summaryscheduler "linkfeed-backend/internal/summary/scheduler"
	summaryusecase "linkfeed-backend/internal/summary/usecase"
	"linkfeed-backend/pkg/config"
	"linkfeed-backend/pkg/database"
	"linkfeed-backend/pkg/gemini"
	"linkfeed-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize repositories. Without a configured database the service
	// runs on in-memory storage, matching the original browser-local
	// persistence model.
	var (
		userRepository     authrepo.UserRepository
		summaryRepository  summaryrepo.SummaryRepository
		settingsRepository settingsrepo.SettingsRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&authdomain.User{}, &summarydomain.FeedSummary{}, &settingsdomain.Settings{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		userRepository = authrepo.NewUserRepository(db)
		summaryRepository = summaryrepo.NewSummaryRepository(db)
		settingsRepository = settingsrepo.NewSettingsRepository(db)
	} else {
		log.Println("[WARN] DATABASE_URL not configured, using in-memory storage")
		userRepository = authrepo.NewMemoryUserRepository()
		summaryRepository = summaryrepo.NewMemorySummaryRepository()
		settingsRepository = settingsrepo.NewMemorySettingsRepository()
	}

	// Email delivery: SMTP when configured, logged simulation otherwise.
	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
		log.Printf("[Mailer] SMTP delivery enabled via %s", cfg.SMTPHost)
	} else {
		sender = mailer.NewLogSender()
		log.Println("[Mailer] SMTP not configured, email delivery is simulated")
	}

	if cfg.GoogleAIAPIKey == "" {
		log.Println("[WARN] GOOGLE_AI_API_KEY not configured, summarization will fail until it is set")
	}
	geminiService := gemini.NewGeminiService(cfg.GoogleAIAPIKey)

	// Initialize use cases (dependency injection)
	authUsecase := authusecase.NewAuthUsecase(userRepository, cfg)
	emailUsecase, err := emailusecase.NewEmailUsecase(sender, cfg.DashboardURL)
	if err != nil {
		log.Fatal("Failed to initialize email usecase:", err)
	}
	settingsUsecase := settingsusecase.NewSettingsUsecase(settingsRepository)
	summarizeUsecase := summaryusecase.NewSummarizeUsecase(geminiService)

	connector := feed.NewMockConnector(cfg.LinkedInClientID, cfg.LinkedInClientSecret, cfg.LinkedInRedirectURI)

	generateUsecase := summaryusecase.NewGenerateUsecase(
		connector,
		summarizeUsecase,
		summaryRepository,
		settingsRepository,
		summaryusecase.NewEmailDestination(emailUsecase),
		summaryusecase.NewNotionDestination(),
	)

	// Background workers + daily scheduler
	worker := summaryusecase.NewGenerateWorkerService(generateUsecase, userRepository, 3)
	worker.Start()
	defer worker.Stop()

	dailyScheduler := summaryscheduler.NewDailyScheduler(settingsRepository, worker)
	if err := dailyScheduler.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}
	defer dailyScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecase,
		summarydelivery.NewSummaryHandler(summarizeUsecase, generateUsecase),
		emaildelivery.NewEmailHandler(emailUsecase),
		settingsdelivery.NewSettingsHandler(settingsUsecase),
		feed.NewHandler(connector),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
