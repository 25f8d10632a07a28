package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente final, sem login. O telefone é a chave de deduplicação do
// agendamento público dentro do tenant.
type Customer struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;uniqueIndex:idx_customers_tenant_phone;not null" json:"tenant_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex:idx_customers_tenant_phone" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
