package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bloqueio manual de agenda (férias, pausa, compromisso pessoal). Bloqueios
// podem se sobrepor entre si; eles só restringem agendamentos.
type Blockout struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;index;not null" json:"tenant_id"`

	ProfessionalID string `gorm:"type:uuid;index;not null" json:"professional_id"`
	Professional   User   `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Blockout) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
