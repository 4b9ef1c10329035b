package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID uint    `gorm:"index:idx_appointments_window;not null" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ProfessionalID *uint         `gorm:"index:idx_appointments_window" json:"professional_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ClientID *string `gorm:"type:uuid;index" json:"client_id"`
	Client   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// UTC. End is always derived from Start plus the effective duration.
	Start time.Time `gorm:"index:idx_appointments_window" json:"start"`
	End   time.Time `json:"end"`

	// scheduling.Status values: 1 Scheduled, 2 Cancelled, 3 Completed, 4 Denied.
	Status int `gorm:"index:idx_appointments_window;default:1" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
