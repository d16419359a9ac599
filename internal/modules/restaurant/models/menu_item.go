package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is a sellable dish or drink
type MenuItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	MenuGroup string    `gorm:"type:text;not null;index" json:"menu_group"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// BeforeCreate sets UUID before creating
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
