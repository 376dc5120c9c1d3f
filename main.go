package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookclub/bookclub-api/internal/book"
	bookhandler "github.com/bookclub/bookclub-api/internal/book/handler"
	"github.com/bookclub/bookclub-api/internal/config"
	"github.com/bookclub/bookclub-api/internal/database"
	"github.com/bookclub/bookclub-api/internal/meeting"
	meetinghandler "github.com/bookclub/bookclub-api/internal/meeting/handler"
	"github.com/bookclub/bookclub-api/pkg/logger"
	"github.com/bookclub/bookclub-api/pkg/metrics"
	"github.com/bookclub/bookclub-api/pkg/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Server.LogLevel)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS())

	// Optional Redis, used only by the distributed rate limiter.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("cannot connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		metrics.RegisterCollectors(reg)
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// Prefer Mongo-backed stores; fall back to memory when no MONGODB_URI is
	// configured or the connection fails.
	var (
		mongoClient  *mongo.Client
		bookStore    book.Store
		meetingStore meeting.Store
	)
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongo(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("cannot connect to MongoDB (%v), using memory-backed stores", err)
		} else {
			mongoClient = client
			db := client.Database(cfg.MongoDB.Database)
			books := db.Collection("books")
			if err := database.EnsureBookIndexes(context.Background(), books); err != nil {
				logger.Fatalf("failed to deploy indexes: %v", err)
			}
			bookStore = book.NewRepository(books)
			meetingStore = meeting.NewRepository(db.Collection("meetings"))
		}
	}
	if bookStore == nil {
		logger.Warnf("no MongoDB configured, data will not survive a restart")
		bookStore = book.NewMemoryStore()
		meetingStore = meeting.NewMemoryStore()
	}

	bookhandler.RegisterBookRoutes(r, book.NewService(bookStore))
	meetinghandler.RegisterMeetingRoutes(r, meeting.NewService(meetingStore))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", func(c *gin.Context) {
		if mongoClient != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := mongoClient.Ping(ctx, nil); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ready": true})
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("bookclub api listening on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
