package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;index;not null" json:"tenant_id"`

	UserID *string `gorm:"type:uuid" json:"user_id"`

	Action   string  `gorm:"size:50;not null" json:"action"`
	Entity   string  `gorm:"size:50" json:"entity"`
	EntityID *string `gorm:"type:uuid" json:"entity_id"`

	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
