package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/auth"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/books"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/events"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/finance"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/grocery"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/health"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/moods"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/notes"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/notifications"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/handlers/recipes"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/migrations"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/services/notification"
	"github.com/SyedaFakhiraSaghir/Personal-Assistant/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	utils.LoadConfig()
	utils.InitializeLogger()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{utils.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()
	migrations.Migrate()

	notificationService := notification.NewService(utils.DB)

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.AuthMiddleware(), auth.Logout)

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		notifications.RegisterNotificationsRoutes(protected, notificationService)

		api := protected.Group("/api")
		moods.RegisterMoodsRoutes(api)
		health.RegisterHealthRoutes(api)
		finance.RegisterFinanceRoutes(api)
		notes.RegisterNotesRoutes(api)
		events.RegisterEventsRoutes(api)
		recipes.RegisterRecipesRoutes(api)
		grocery.RegisterGroceryRoutes(api)
		books.RegisterBooksRoutes(api)
	}

	port := utils.AppConfig.AppPort
	if port == "" {
		port = "9000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
