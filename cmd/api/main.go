package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/career-advisor/internal/config"
	"alfredoptarigan/career-advisor/internal/handlers"
	"alfredoptarigan/career-advisor/internal/services"
)

// multipartOverhead leaves room for boundaries and headers around the file itself.
const multipartOverhead = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize LLM provider
	llmService, err := newLLMService(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}
	log.Printf("✅ LLM provider %q initialized successfully\n", cfg.LLM.Provider)

	// Initialize services
	pdfParser := services.NewPDFParserService()
	extractor := services.NewDocumentExtractor(pdfParser)
	uploadService := services.NewUploadService(cfg.Upload.MaxFileSize)
	advisorService := services.NewAdvisorService(llmService, extractor, cfg.LLM.Timeout)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	adviceHandler := handlers.NewAdviceHandler(advisorService, uploadService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Career Advisor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 10*time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + multipartOverhead,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	handlers.RegisterRoutes(app, adviceHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (%s)\n", addr, cfg.Server.Env)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newLLMService(cfg *config.Config) (services.LLMService, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return services.NewGeminiService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
	default:
		return services.NewOpenAIService(cfg.LLM.APIURL, cfg.LLM.APIKey, cfg.LLM.Model, nil), nil
	}
}
