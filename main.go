package main

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tutorialhub/api"
	"tutorialhub/auth"
	"tutorialhub/common"
	"tutorialhub/database"
	"tutorialhub/store"
	"tutorialhub/uploads"
	"tutorialhub/web"
)

func main() {
	godotenv.Load()

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedCategories(db); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	router.Use(sessions.Sessions("tutorialhub-session", auth.NewSessionStore(db, sessionSecret)))

	router.LoadHTMLGlob("*/views/*.html")
	router.Static("/public", "./public")

	userRepo := store.NewUserRepo(db)
	tagRepo := store.NewTagRepo(db)
	categoryRepo := store.NewCategoryRepo(db)
	tutorialRepo := store.NewTutorialRepo(db, tagRepo)

	authModule := auth.NewAuthModule(db, userRepo)
	authModule.RegisterRoutes(router)

	apiModule := api.NewApiModule(db, tutorialRepo, tagRepo, categoryRepo)
	apiModule.RegisterRoutes(router)

	uploadsModule := uploads.NewUploadsModule()
	uploadsModule.RegisterRoutes(router)

	webModule := web.NewWebModule(db, tutorialRepo, categoryRepo, tagRepo, userRepo)
	webModule.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
