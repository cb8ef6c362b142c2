package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soupine/linkedin-backend-extraction/internal/classify"
	"github.com/soupine/linkedin-backend-extraction/internal/classify/hfinference"
	"github.com/soupine/linkedin-backend-extraction/internal/documents"
	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
	"github.com/soupine/linkedin-backend-extraction/internal/reviews"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/config"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/metrics"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/server/middleware"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/server/respond"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/storage/db"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/storage/object"
	localstore "github.com/soupine/linkedin-backend-extraction/internal/shared/storage/object/local"
	s3store "github.com/soupine/linkedin-backend-extraction/internal/shared/storage/object/s3"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"POLLING": {Rate: 5, Burst: 10},
				"UPLOAD":  {Rate: 1, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				switch {
				case c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/reviews/:id":
					return "POLLING"
				case c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/documents":
					return "UPLOAD"
				}
				return ""
			},
		}),
	)

	store := buildObjectStore(cfg)
	sqlDB := connectDatabase(cfg)

	var docRepo documents.DocumentsRepo
	var reviewRepo reviews.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		reviewRepo = &reviews.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
		reviewRepo = reviews.NewMemoryRepo()
	}

	docSvc := &documents.Service{Store: store, Repo: docRepo}
	docHandler := documents.NewHandler(docSvc)

	scorer := feedback.NewScorer(buildClassifier(cfg), feedback.Weights{})
	reviewSvc := &reviews.Service{
		Repo:    reviewRepo,
		DocRepo: docRepo,
		Store:   store,
		Scorer:  scorer,
		Opts:    profile.Options{RecommendedSkills: recommendedSkills(cfg)},
	}
	reviewHandler := reviews.NewHandler(reviewSvc, docRepo)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	docHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api)

	return r
}

func buildObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" && cfg.S3Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err == nil {
			return store
		}
		log.Printf("s3 store unavailable, falling back to local: %v", err)
	}
	return localstore.New(cfg.LocalStoreDir)
}

func connectDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(context.Background(), dbConn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil
	}
	return dbConn
}

func buildClassifier(cfg config.Config) classify.Classifier {
	if cfg.ClassifierProvider == "stub" {
		// Rules-only scoring; model-backed signals fall to the neutral
		// midpoint and verdicts carry the degraded note.
		return classify.Stub{Err: classify.ErrUnavailable}
	}
	client, err := hfinference.NewClient(cfg.HFAPIToken, cfg.SentimentModel, cfg.ZeroShotModel, cfg.ClassifierTimeout)
	if err != nil {
		log.Printf("classifier unavailable, scoring degrades to rules only: %v", err)
		return classify.Stub{Err: classify.ErrUnavailable}
	}
	return client
}

func recommendedSkills(cfg config.Config) []string {
	out := make([]string, 0, len(cfg.RecommendedSkills))
	for _, s := range cfg.RecommendedSkills {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
