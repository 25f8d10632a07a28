package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Horário de funcionamento do salão, uma linha por dia da semana (0 = domingo).
type BusinessHours struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;index:idx_business_hours_tenant_weekday,unique;not null" json:"tenant_id"`

	Weekday int `gorm:"index:idx_business_hours_tenant_weekday,unique" json:"weekday"`

	Open    string `gorm:"size:5" json:"open"`
	Close   string `gorm:"size:5" json:"close"`
	Enabled bool   `json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BusinessHours) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
