package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/httpresp"
	"github.com/GabrielAraujo027/Kalenner/internal/middleware"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
	"github.com/GabrielAraujo027/Kalenner/internal/timezone"
)

type CompanyHandler struct {
	db *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

type UpdateCompanyRequest struct {
	Name           *string `json:"name,omitempty"`
	LogoURL        *string `json:"logo_url,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	Timezone       *string `json:"timezone,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	CorporateName  *string `json:"corporate_name,omitempty"`
	CNPJ           *string `json:"cnpj,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
}

// Get returns the caller's own company.
func (h *CompanyHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var company models.Company
	if err := h.db.First(&company, actor.CompanyID).Error; err != nil {
		httperr.NotFound(c, "Empresa não encontrada.")
		return
	}

	httpresp.OK(c, company)
}

// GetBySlug is the public tenant branding lookup.
func (h *CompanyHandler) GetBySlug(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
	if slug == "" {
		httperr.BadRequest(c, "Slug inválido.")
		return
	}

	var company models.Company
	if err := h.db.Where("slug = ?", slug).First(&company).Error; err != nil {
		httperr.NotFound(c, "Empresa não encontrada.")
		return
	}

	httpresp.OK(c, company)
}

// Update patches branding/contact settings of the caller's company.
func (h *CompanyHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var company models.Company
	if err := h.db.First(&company, actor.CompanyID).Error; err != nil {
		httperr.NotFound(c, "Empresa não encontrada.")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		httperr.BadRequest(c, "Fuso horário inválido.")
		return
	}

	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}
	if req.PrimaryColor != nil {
		company.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		company.SecondaryColor = *req.SecondaryColor
	}
	if req.Timezone != nil {
		company.Timezone = *req.Timezone
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.City != nil {
		company.City = *req.City
	}
	if req.State != nil {
		company.State = *req.State
	}
	if req.CorporateName != nil {
		company.CorporateName = *req.CorporateName
	}
	if req.CNPJ != nil {
		company.CNPJ = *req.CNPJ
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}

	if err := h.db.Save(&company).Error; err != nil {
		httperr.Internal(c, "Erro ao atualizar a empresa.")
		return
	}

	httpresp.OK(c, company)
}
