package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "inspoboard/docs"
	"inspoboard/internal/config"
	"inspoboard/internal/database"
	"inspoboard/internal/handler"
	"inspoboard/internal/middleware"
	"inspoboard/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Logger *zap.Logger
}

// Init opens the database and builds the router.
func Init(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	return &Server{
		Engine: NewRouter(db, cfg, logger),
		DB:     db,
		Config: cfg,
		Logger: logger,
	}, nil
}

// NewRouter wires repositories and handlers onto a gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.New(corsConfig(cfg)))

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardRepo, cardRepo, logger)
	cardHandler := handler.NewCardHandler(cardRepo, boardRepo, logger)

	// Board routes
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards", boardHandler.GetAll)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PUT("/boards/:id", boardHandler.Update)
	r.DELETE("/boards/:id", boardHandler.Delete)
	r.GET("/boards/:id/cards", boardHandler.GetCards)
	r.POST("/boards/:id/cards", boardHandler.CreateCard)

	// Card routes
	r.POST("/cards", cardHandler.Create)
	r.GET("/cards", cardHandler.GetAll)
	r.GET("/cards/:id", cardHandler.GetByID)
	r.PUT("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)
	r.PATCH("/cards/:id/like", cardHandler.Like)
	r.POST("/cards/:id/like", cardHandler.Like)
	r.DELETE("/cards/:id/like", cardHandler.Unlike)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := []string{"*"}
	if cfg != nil && len(cfg.CORSAllowedOrigins) > 0 {
		origins = cfg.CORSAllowedOrigins
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("🚀 Server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-signalCtx.Done():
	}

	s.Logger.Info("🛑 Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.Logger.Info("✅ Server exited properly")
	return nil
}
