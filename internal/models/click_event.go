package models

import (
	"time"
)

// ClickEvent is one redirect hit. The running counter on Link is the source
// of truth for totals; events feed the per-link stats breakdown.
type ClickEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LinkID     string    `gorm:"not null;size:36;index" json:"link_id"`
	Timestamp  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
	Referrer   string    `gorm:"size:255;default:'Direct'" json:"referrer"`
	UserAgent  string    `gorm:"size:255" json:"-"` // raw header, parsed by the stats worker
	Browser    string    `gorm:"size:50" json:"browser"`
	OS         string    `gorm:"size:100" json:"os"`
	DeviceType string    `gorm:"size:50" json:"device_type"`
	IPAddress  string    `gorm:"size:45" json:"ip_address,omitempty"` // masked before insert
}
