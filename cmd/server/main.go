package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	config "github.com/postdeck/postdeck/configs"
	"github.com/postdeck/postdeck/internal/api/handlers"
	"github.com/postdeck/postdeck/internal/service"
	"github.com/postdeck/postdeck/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	app := fiber.New(fiber.Config{
		BodyLimit: service.MaxUploadSize + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	st := store.New()

	var blobs service.BlobStorage
	if cfg.StorageBackend == "r2" {
		blobs = service.NewR2Storage(cfg.R2)
	} else {
		local, err := service.NewLocalStorage(cfg.UploadsDir)
		if err != nil {
			log.Fatalf("Failed to prepare uploads directory: %v", err)
		}
		blobs = local
		app.Static("/uploads", cfg.UploadsDir)
	}

	postService := service.NewPostService(st.Posts)
	templateService := service.NewTemplateService(st.Templates)
	mediaService := service.NewMediaService(st.Media, blobs)
	analyticsService := service.NewAnalyticsService(st.Analytics)
	dashboardService := service.NewDashboardService(st.Posts)

	api := app.Group("/api")

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/status/:status", post.ListPostsByStatus)
	api.Get("/posts/:id", post.GetPost)
	api.Post("/posts", post.CreatePost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.DeletePost)

	template := handlers.NewTemplateHandler(templateService)
	api.Get("/templates", template.ListTemplates)
	api.Get("/templates/category/:category", template.ListTemplatesByCategory)
	api.Get("/templates/:id", template.GetTemplate)
	api.Post("/templates", template.CreateTemplate)

	media := handlers.NewMediaHandler(mediaService)
	api.Get("/media", media.ListMedia)
	api.Post("/media/upload", media.UploadMedia)
	api.Delete("/media/:id", media.DeleteMedia)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.GetAnalytics)
	api.Post("/analytics", analytics.CreateAnalytics)

	dashboard := handlers.NewDashboardHandler(dashboardService)
	api.Get("/dashboard/summary", dashboard.GetSummary)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
