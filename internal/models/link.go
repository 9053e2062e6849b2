package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Link struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ShortCode   string    `gorm:"unique;not null;size:8;index" json:"short_code"`
	OriginalURL string    `gorm:"not null;type:text" json:"original_url"`
	OwnerID     string    `gorm:"not null;size:36;index" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"-"`
	Clicks      int       `gorm:"default:0" json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	ClickEvents []ClickEvent `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Link) TableName() string {
	return "links"
}

func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
