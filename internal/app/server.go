package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/divinosdoces/contratos-api/internal/api/handlers"
	appMiddleware "github.com/divinosdoces/contratos-api/internal/api/middlewares"
	"github.com/divinosdoces/contratos-api/internal/config"
	"github.com/divinosdoces/contratos-api/internal/core"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, db core.DbClient, obj core.ObjectClient, extractor handlers.ContractExtractor, emb core.EmbeddingProvider) *Server {
	authHandler := handlers.NewAuthHandler(db, cfg)
	contractHandler := handlers.NewContractHandler(extractor, obj, cfg)
	orderHandler := handlers.NewOrderHandler(db, emb)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8888"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Serve the panel frontend from the web directory
	fileServer := http.FileServer(http.Dir("./web"))
	r.Handle("/*", fileServer)

	// API routes
	r.Route("/api", func(api chi.Router) {
		// public endpoints
		api.Post("/signup", authHandler.Signup)
		api.Post("/login", authHandler.Login)

		// protected endpoints
		api.Group(func(protected chi.Router) {
			protected.Use(appMiddleware.JWTMiddleware(cfg.JWTSecret))

			protected.Post("/contracts/upload", contractHandler.Upload)
			protected.Post("/contracts/generate", contractHandler.Generate)
			protected.Post("/contracts/delivery-report", contractHandler.DeliveryReport)
			protected.Post("/contracts/export", contractHandler.Export)
			protected.Get("/contracts/archive", contractHandler.DownloadArchive)
			protected.Delete("/contracts/archive", contractHandler.DeleteArchive)

			protected.Post("/orders", orderHandler.Create)
			protected.Get("/orders", orderHandler.List)
			protected.Get("/orders/search", orderHandler.Search)
			protected.Get("/orders/{id}", orderHandler.Get)
		})
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
