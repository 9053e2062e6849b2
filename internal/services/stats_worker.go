package services

import (
	"context"
	"log/slog"

	"linkly/internal/models"

	"github.com/mssola/user_agent"
	"gorm.io/gorm"
)

type StatsService struct {
	db           *gorm.DB
	logger       *slog.Logger
	clickChannel chan models.ClickEvent
}

func NewStatsService(db *gorm.DB, logger *slog.Logger) *StatsService {
	return &StatsService{
		db:           db,
		logger:       logger,
		clickChannel: make(chan models.ClickEvent, 1000),
	}
}

func (s *StatsService) Start(ctx context.Context) {
	s.logger.Info("Stats worker starting")
	for {
		select {
		case event := <-s.clickChannel:
			s.enrichClickEvent(&event)

			if err := s.db.Create(&event).Error; err != nil {
				s.logger.Error("Failed to record click event", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Stats worker stopping")
			return
		}
	}
}

// RecordClickAsync queues a click event for the worker. Drops the event
// rather than delay a redirect when the buffer is full.
func (s *StatsService) RecordClickAsync(event models.ClickEvent) {
	select {
	case s.clickChannel <- event:
	default:
		s.logger.Warn("Stats channel full, dropping click event")
	}
}

func (s *StatsService) enrichClickEvent(event *models.ClickEvent) {
	ua := user_agent.New(event.UserAgent)
	browserName, browserVer := ua.Browser()
	event.Browser = browserName + " " + browserVer
	event.OS = ua.OS()

	if ua.Mobile() {
		event.DeviceType = "Mobile"
	} else if ua.Bot() {
		event.DeviceType = "Bot"
	} else {
		event.DeviceType = "Desktop"
	}

	if event.Referrer == "" {
		event.Referrer = "Direct"
	}

	// Mask IP for privacy before it is ever persisted
	event.IPAddress = maskIP(event.IPAddress)
}

func maskIP(ip string) string {
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == '.' {
			return ip[:i] + ".0"
		}
		if ip[i] == ':' {
			return "IPv6 (Masked)"
		}
	}
	return ip
}
