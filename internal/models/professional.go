package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID uint    `gorm:"index;not null" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name     string `gorm:"size:100;not null" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
