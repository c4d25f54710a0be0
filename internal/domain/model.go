package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // Opaque record identifiers
	"gorm.io/gorm"           // GORM ORM library
)

// Model is embedded by every persisted record
type Model struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"` // Opaque unique identifier
	CreatedAt time.Time `json:"createdAt"`                     // Set by GORM on insert
	UpdatedAt time.Time `json:"updatedAt"`                     // Set by GORM on save
}

// BeforeCreate assigns a UUID when the caller did not
func (m *Model) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
