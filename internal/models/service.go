package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID uint    `gorm:"index;not null" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Description string   `gorm:"size:255" json:"description"`
	// Default appointment duration; a ProfessionalService link may override it.
	DurationMinutes int      `gorm:"not null" json:"duration_minutes"`
	Price           *float64 `json:"price"`
	IsActive        bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
