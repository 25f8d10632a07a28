package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;index;not null" json:"tenant_id"`

	CustomerID string   `gorm:"type:uuid;not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ProfessionalID string `gorm:"type:uuid;index;not null" json:"professional_id"`
	Professional   User   `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// EndTime é um snapshot de start + duração do serviço no momento da
	// criação; mudar a duração no catálogo não move agendamentos existentes.
	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Notes     string `gorm:"size:255" json:"notes"`
	ColorCode string `gorm:"size:20" json:"color_code,omitempty"`

	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
