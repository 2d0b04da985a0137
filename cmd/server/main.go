package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docquiz/internal/api"
	"docquiz/internal/api/handlers"
	"docquiz/internal/auth"
	"docquiz/internal/db"
	"docquiz/internal/gemini"
	"docquiz/internal/storage"
	"docquiz/internal/youtube"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables first; a missing .env file is fine when the
	// variables come from the system environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("FATAL: Error loading .env file: %v", err)
		}
		log.Println("WARN: .env file not found. Relying on system environment variables.")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Collaborators. Each constructor returns nil when its configuration is
	// absent; the affected endpoints then answer 503 instead of the whole
	// server refusing to start.
	database, err := db.NewDB(ctx)
	if err != nil {
		log.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	if database != nil {
		defer database.Close()
	}

	geminiClient, err := gemini.NewClient(ctx)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize storage client: %v", err)
	}

	verifier := auth.NewVerifier()

	router := gin.Default()

	handler := handlers.NewHandler(geminiClient, youtube.New(), storageClient, database)
	api.SetupRoutes(router, handler, verifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("INFO: Server listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("INFO: Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("INFO: Server exited properly")
}
