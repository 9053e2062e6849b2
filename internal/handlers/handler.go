package handlers

import (
	"log/slog"

	"linkly/internal/config"
	"linkly/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg          config.Config
	logger       *slog.Logger
	db           *gorm.DB
	rdb          *redis.Client
	authService  *services.AuthService
	linkService  *services.LinkService
	statsService *services.StatsService
	qrService    *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	authService *services.AuthService,
	linkService *services.LinkService,
	statsService *services.StatsService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		rdb:          rdb,
		authService:  authService,
		linkService:  linkService,
		statsService: statsService,
		qrService:    qrService,
	}
}
