package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmpresa = "Empresa"
	RoleCliente = "Cliente"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CompanyID uint    `gorm:"uniqueIndex:idx_users_company_email;not null" json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Email        string `gorm:"size:100;uniqueIndex:idx_users_company_email;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Empresa (company admin) or Cliente. Assigned at creation, never changed.
	Role string `gorm:"size:20;not null;default:'Cliente'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
