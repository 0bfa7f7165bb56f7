package main

import (
	"context"
	"log"
	"time"

	"github.com/arnavk03/staffdir/internal/config"
	"github.com/arnavk03/staffdir/internal/db"
	"github.com/arnavk03/staffdir/internal/handlers"
	"github.com/arnavk03/staffdir/internal/services"
	"github.com/arnavk03/staffdir/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	database, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	log.Println("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	imageStore, err := storage.NewImageStore(cfg)
	if err != nil {
		log.Fatalf("MinIO initialization failed: %v", err)
	}
	log.Println("Connected to MinIO")

	tokens := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(database.Collection("users"), tokens)
	employeeService := services.NewEmployeeService(database.Collection("employees"))
	uploadService := services.NewUploadService(imageStore)

	app := handlers.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewEmployeeHandler(employeeService, uploadService),
		tokens,
	)

	log.Fatal(app.Listen(":" + cfg.Port))
}
