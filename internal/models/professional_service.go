package models

// ProfessionalService links a Professional to a Service of the same company.
// Overrides, when set, replace the service defaults for that professional.
type ProfessionalService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"uniqueIndex:idx_professional_service;not null" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"uniqueIndex:idx_professional_service;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DurationMinutesOverride *int     `json:"duration_minutes_override"`
	PriceOverride           *float64 `json:"price_override"`
}
