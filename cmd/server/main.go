package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"exam-bank/internal/admin"
	"exam-bank/internal/auth"
	"exam-bank/internal/catalog"
	"exam-bank/internal/history"
	"exam-bank/internal/question"
	"exam-bank/pkg/database"

	"github.com/gorilla/mux"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize database
	dbConfig := &database.Config{
		URL:      os.Getenv("POSTGRES_URL"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize repositories
	catalogRepo := catalog.NewRepository(db)
	questionRepo := question.NewRepository(db)
	authRepo := auth.NewRepository(db)
	historyRepo := history.NewRepository(db)

	// Initialize services
	questionService := question.NewService(questionRepo)
	authService := auth.NewService(authRepo)
	historyService := history.NewService(historyRepo)

	// Initialize handlers
	catalogHandler := catalog.NewHandler(catalogRepo)
	questionHandler := question.NewHandler(questionService)
	authHandler := auth.NewHandler(authService)
	historyHandler := history.NewHandler(historyService)
	adminHandler := admin.NewHandler(db, os.Getenv("INIT_SECRET"))

	// Setup router
	router := mux.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	handler := corsMiddleware.Handler(router)

	router.HandleFunc("/exams", catalogHandler.GetExams).Methods("GET")
	router.HandleFunc("/modules", catalogHandler.GetModules).Methods("GET")
	router.HandleFunc("/collections", catalogHandler.GetCollections).Methods("GET")
	router.HandleFunc("/questions/count", questionHandler.GetCount).Methods("GET")
	router.HandleFunc("/questions", questionHandler.GetQuestions).Methods("GET")
	router.HandleFunc("/register", authHandler.Register).Methods("POST", "OPTIONS")
	router.HandleFunc("/login", authHandler.Login).Methods("POST", "OPTIONS")
	router.HandleFunc("/history", historyHandler.RecordAttempt).Methods("POST", "OPTIONS")
	router.HandleFunc("/history", historyHandler.GetHistory).Methods("GET")
	router.HandleFunc("/init", adminHandler.InitSchema).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
