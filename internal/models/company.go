package models

import "time"

type Company struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	LogoURL        string `gorm:"size:255" json:"logo_url"`
	PrimaryColor   string `gorm:"size:20" json:"primary_color"`
	SecondaryColor string `gorm:"size:20" json:"secondary_color"`

	Timezone string `gorm:"size:50;default:'America/Sao_Paulo'" json:"timezone"`

	Address       string `gorm:"size:255" json:"address"`
	City          string `gorm:"size:100" json:"city"`
	State         string `gorm:"size:50" json:"state"`
	CorporateName string `gorm:"size:150" json:"corporate_name"`
	CNPJ          string `gorm:"size:20" json:"cnpj"`
	Phone         string `gorm:"size:20" json:"phone"`
	Email         string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
