package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-leads/internal/infra/database"
	"github.com/xavierca1/ligue-leads/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/infra/mail"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
	"github.com/xavierca1/ligue-leads/internal/infra/scoring"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASSWORD", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	clientRepo := database.NewClientRepository(db)

	// Adapters
	scorer := scoring.NewRandomScorer(nil)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), envOrInt("MAIL_PORT", 587),
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@liguemedicina.com"),
		os.Getenv("LEADS_INBOX"),
	)

	// Worker: consumes lead-captured events and notifies the sales inbox
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// UseCases
	createUC := usecase.NewCreateLeadUseCase(leadRepo, clientRepo, scorer, producer)
	getUC := usecase.NewGetLeadUseCase(leadRepo)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadUseCase(leadRepo, clientRepo, scorer)
	deleteUC := usecase.NewDeleteLeadUseCase(leadRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(createUC, getUC, listUC, updateUC, deleteUC)
	authHandler := handlers.NewAuthHandler(
		[]byte(os.Getenv("JWT_SECRET")),
		os.Getenv("API_USER"),
		os.Getenv("API_PASSWORD"),
	)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	loginLimiter := appmiddleware.NewRateLimiter(10, time.Minute)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.With(loginLimiter.Handler).Post("/login", authHandler.Login)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth([]byte(os.Getenv("JWT_SECRET"))))
		r.Get("/list", leadHandler.List)
		r.Post("/store", leadHandler.Store)
		r.Get("/{id}", leadHandler.Show)
		r.Post("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Destroy)
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Lead API running on %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
