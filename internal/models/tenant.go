package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	PublicSlug           string `gorm:"size:100;uniqueIndex;not null" json:"public_slug"`
	PublicBookingEnabled bool   `gorm:"default:true" json:"public_booking_enabled"`

	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:50" json:"timezone"`

	// Zero means "use the server default".
	SlotStepMinutes int `json:"slot_step_minutes"`
	MinLeadMinutes  int `json:"min_lead_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
