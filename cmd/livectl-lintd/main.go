package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edirooss/livectl/internal/config"
	"github.com/edirooss/livectl/internal/http/handler"
	mw "github.com/edirooss/livectl/internal/http/middleware"
	"github.com/edirooss/livectl/internal/metrics"
	"github.com/edirooss/livectl/internal/redis"
	"github.com/edirooss/livectl/internal/service"
	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var configPath = flag.String("config", config.DefaultPath, "path to YAML config")

func init() {
	// Handle version display
	handleVersion()
}

func main() {
	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Create Zap logger
	log := buildLogger(cfg.Dev)
	defer log.Sync()
	log = log.Named("main")

	// Create Gin router
	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = zap.NewStdLog(log.Named("gin")).Writer() // Configure Gin's logger to use Zap
	r := gin.New()

	// Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	limiter := mw.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	sweepers := []func(){limiter.Sweep}

	var store service.DraftStore
	switch cfg.DraftStore {
	case config.DraftStoreMemory:
		memstore := service.NewMemoryDraftStore(log)
		sweepers = append(sweepers, func() { memstore.Sweep() })
		store = memstore
	default:
		rdb := redis.NewClient(cfg.RedisAddr, cfg.RedisDB, log)
		defer rdb.Close()
		_ = rdb.Ping(ctx) // drafts fail per request while redis is down; lint keeps working
		store = redis.NewDraftRepository(log, rdb)
	}
	go sweep(ctx, time.Minute, sweepers...)

	lintsvc := service.NewLintService(log, m, service.LintOptions{
		StrictEnums: cfg.StrictEnums,
		Concurrency: cfg.BatchConcurrency,
	})
	catalogsvc := service.NewCatalogService(log)
	draftsvc := service.NewDraftService(log, store, lintsvc, m, service.DraftOptions{TTL: cfg.DraftTTL})

	// Apply Gin middlewares
	{
		r.Use(gin.Recovery()) // Recovery first (outermost)
		r.Use(mw.RequestID()) // Attach request ID for tracing; early in the chain so it's available everywhere

		if cfg.Dev { // Enable CORS for local UI dev
			r.Use(cors.New(cors.Config{
				AllowOrigins:  []string{"http://localhost:5173", "http://localhost:4173", "http://localhost:3000", "http://127.0.0.1:3000"},
				AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
				AllowHeaders:  []string{"X-Request-ID", "Content-Type"},
				ExposeHeaders: []string{"X-Request-ID", "X-Total-Count", "X-Catalog-Generated-At", "Location"},
				MaxAge:        12 * time.Hour,
			}))
		} else { // Behind a TLS terminating proxy
			r.SetTrustedProxies([]string{"127.0.0.1"})
			r.Use(secure.New(secure.Config{
				SSLProxyHeaders: map[string]string{
					"X-Forwarded-Proto": "https",
				},
				FrameDeny:          true,
				ContentTypeNosniff: true,
			}))
		}

		r.Use(mw.AccessLog(log.Named("http")))
		r.Use(metrics.RequestMiddleware(m))
		r.Use(mw.RateLimit(limiter, m.IncRateLimited))
		r.Use(mw.BodyLimit(jsonx.MaxBodyBytes))
	}

	// Register route handlers
	{
		r.GET("/api/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
		r.GET("/metrics", gin.WrapH(m.Handler(func() { draftsvc.RefreshGauge(context.Background()) })))

		v1 := r.Group("/api/v1")

		// --- Type catalog ---
		typeshndlr := handler.NewTypesHandler(log, catalogsvc)
		v1.GET("/types", typeshndlr.List)
		v1.GET("/types/:name", typeshndlr.Get)

		// --- Lint ---
		linthndlr := handler.NewLintHandler(log, lintsvc)
		limitLint := mw.LimitConcurrentRequests(cfg.MaxConcurrentRequests)
		v1.POST("/lint", limitLint, linthndlr.LintBatch)
		v1.POST("/lint/:name", limitLint, linthndlr.Lint)

		// --- Drafts ---
		draftshndlr := handler.NewDraftsHandler(log, draftsvc, lintsvc)
		requireValidID := mw.RequireValidDraftID()
		v1.POST("/drafts/:name", limitLint, draftshndlr.CreateDraft)
		v1.GET("/drafts", draftshndlr.GetDraftList)
		v1.GET("/drafts/:id", requireValidID, draftshndlr.GetDraft)
		v1.DELETE("/drafts/:id", requireValidID, draftshndlr.DeleteDraft)
	}

	httpsrv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		ReadHeaderTimeout: 2 * time.Second,  // kills header-drip Slowloris
		ReadTimeout:       10 * time.Second, // full request read (incl. body)
		WriteTimeout:      15 * time.Second, // avoid forever-hangs on writes
		IdleTimeout:       60 * time.Second, // keep-alive cap
		MaxHeaderBytes:    1 << 20,          // 1MB cap
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpsrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("running HTTP server",
		zap.String("addr", httpsrv.Addr),
		zap.String("draft_store", cfg.DraftStore),
		zap.Bool("dev", cfg.Dev),
	)
	if err := httpsrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", zap.Error(err))
	}
	log.Info("server closed")
}

// handleVersion prints build metadata and exits when -v/--version is provided.
func handleVersion() {
	v := flag.Bool("v", false, "print version and exit")
	flag.BoolVar(v, "version", false, "print version and exit")
	flag.Parse()

	if *v {
		fmt.Printf("livectl-lintd %s (commit %s, built %s)\n", config.Version, config.GitCommit, config.BuildDate)
		os.Exit(0)
	}
}

// sweep runs fns every interval until ctx is done.
func sweep(ctx context.Context, interval time.Duration, fns ...func()) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for _, fn := range fns {
				fn()
			}
		}
	}
}

// helpers

func buildLogger(dev bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	if dev {
		logConfig.Level.SetLevel(zap.DebugLevel)
	} else {
		logConfig.Level.SetLevel(zap.InfoLevel)
	}
	return zap.Must(logConfig.Build())
}
