// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, compression, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/anunita/TriviaAPI/internal/config"
	"github.com/anunita/TriviaAPI/internal/domain"
	"github.com/anunita/TriviaAPI/internal/http/handlers"
	"github.com/anunita/TriviaAPI/internal/http/middleware"
	"github.com/anunita/TriviaAPI/internal/repo"
	"github.com/anunita/TriviaAPI/internal/services"
)

// categoryRepoShim adapts the repository free functions to the
// services.CategoryRepo interface. This keeps services decoupled from the
// concrete repo package while reusing existing functions.
type categoryRepoShim struct{}

// ListCategories proxies repo.ListCategories.
func (categoryRepoShim) ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	return repo.ListCategories(ctx, db)
}

// questionRepoShim adapts the question repository free functions to the
// services.QuestionRepo interface.
type questionRepoShim struct{}

// ListQuestions proxies repo.ListQuestions.
func (questionRepoShim) ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.Question, error) {
	return repo.ListQuestions(ctx, db)
}

// ListQuestionsByCategory proxies repo.ListQuestionsByCategory.
func (questionRepoShim) ListQuestionsByCategory(ctx context.Context, db *gorm.DB, categoryID int) ([]domain.Question, error) {
	return repo.ListQuestionsByCategory(ctx, db, categoryID)
}

// SearchQuestions proxies repo.SearchQuestions.
func (questionRepoShim) SearchQuestions(ctx context.Context, db *gorm.DB, term string) ([]domain.Question, error) {
	return repo.SearchQuestions(ctx, db, term)
}

// GetQuestion proxies repo.GetQuestion.
func (questionRepoShim) GetQuestion(ctx context.Context, db *gorm.DB, id int) (*domain.Question, error) {
	return repo.GetQuestion(ctx, db, id)
}

// CreateQuestion proxies repo.CreateQuestion.
func (questionRepoShim) CreateQuestion(ctx context.Context, db *gorm.DB, q *domain.Question) error {
	return repo.CreateQuestion(ctx, db, q)
}

// DeleteQuestion proxies repo.DeleteQuestion.
func (questionRepoShim) DeleteQuestion(ctx context.Context, db *gorm.DB, id int) error {
	return repo.DeleteQuestion(ctx, db, id)
}

// QuizCandidates proxies repo.QuizCandidates.
func (questionRepoShim) QuizCandidates(ctx context.Context, db *gorm.DB, categoryID int, exclude []int) ([]domain.Question, error) {
	return repo.QuizCandidates(ctx, db, categoryID, exclude)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting, CORS
// and security headers, health and metrics endpoints, and then mounts the
// public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per client IP)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses for clients that accept it
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.MsgNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.MsgMethodNotAllowed)
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db
	catSvc := services.NewCategoryService(db, categoryRepoShim{})
	qSvc := &services.QuestionService{
		DB:       db,
		Repo:     questionRepoShim{},
		PageSize: cfg.PageSize,
	}
	quizSvc := services.NewQuizService(db, questionRepoShim{})
	h := handlers.New(catSvc, qSvc, quizSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Categories
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:id/questions", h.ListByCategory)

		// Questions
		api.GET("/questions", h.ListQuestions)
		api.POST("/questions", h.CreateQuestion)
		api.DELETE("/questions/:id", h.DeleteQuestion)
		api.POST("/questions/search", h.SearchQuestions)

		// Quizzes
		api.POST("/quizzes", h.PlayQuiz)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
