package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/interview-coach/backend/internal/auth"
	"github.com/interview-coach/backend/internal/bank"
	"github.com/interview-coach/backend/internal/database"
	"github.com/interview-coach/backend/internal/engine"
	"github.com/interview-coach/backend/internal/generator"
	"github.com/interview-coach/backend/internal/middleware"
	"github.com/interview-coach/backend/internal/resume"
	"github.com/interview-coach/backend/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: no .env file loaded: %v", err)
	}

	ctx := context.Background()

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Question bank
	bankPath := os.Getenv("QUESTION_BANK_PATH")
	if bankPath == "" {
		bankPath = "question_bank.json"
	}
	questionBank := bank.LoadFile(bankPath)
	log.Printf("Question bank loaded: %d questions", questionBank.Len())

	// Evaluation capabilities
	embedder, err := engine.NewGeminiEmbedder(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize embedder: %v", err)
	}
	segmenter, err := engine.NewPunktSegmenter()
	if err != nil {
		log.Fatalf("Failed to initialize sentence segmenter: %v", err)
	}
	eng := engine.New(engine.Capabilities{Embedder: embedder, Segmenter: segmenter})

	selector := bank.NewSelector(questionBank, nil)
	gen := generator.NewGenerator()

	questionCount := 8
	if raw := os.Getenv("QUESTIONS_PER_SESSION"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			questionCount = n
		} else {
			log.Printf("WARN: invalid QUESTIONS_PER_SESSION %q, using %d", raw, questionCount)
		}
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	resumeHandler := resume.NewHandler()
	sessionService := session.NewService(session.NewStore(db), questionBank, selector, eng, gen, questionCount)
	sessionHandler := session.NewHandler(sessionService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/resume/rank", resumeHandler.RankDomains).Methods("POST")
	protected.HandleFunc("/resume/domains", resumeHandler.ListDomains).Methods("GET")

	protected.HandleFunc("/sessions", sessionHandler.Create).Methods("POST")
	protected.HandleFunc("/sessions", sessionHandler.List).Methods("GET")
	protected.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET")
	protected.HandleFunc("/sessions/{id}/generate-questions", sessionHandler.GenerateQuestions).Methods("POST")
	protected.HandleFunc("/sessions/{id}/next-question", sessionHandler.NextQuestion).Methods("GET")
	protected.HandleFunc("/sessions/{id}/save-answer", sessionHandler.SaveAnswer).Methods("POST")
	protected.HandleFunc("/sessions/{id}/evaluate-answer", sessionHandler.EvaluateAnswer).Methods("POST")
	protected.HandleFunc("/sessions/{id}/evaluate-all", sessionHandler.EvaluateAll).Methods("POST")
	protected.HandleFunc("/sessions/{id}/results", sessionHandler.Results).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
