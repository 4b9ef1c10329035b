package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/httpresp"
	"github.com/GabrielAraujo027/Kalenner/internal/middleware"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type UpdateProfessionalRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	q := h.db.Where("company_id = ?", actor.CompanyID)

	if activeStr := strings.TrimSpace(c.Query("active")); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			q = q.Where("is_active = ?", active)
		}
	}

	var professionals []models.Professional
	if err := q.Order("name ASC").Find(&professionals).Error; err != nil {
		httperr.Internal(c, "Erro ao listar os profissionais.")
		return
	}

	httpresp.OK(c, professionals)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		httperr.BadRequest(c, "Nome é obrigatório.")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	prof := models.Professional{
		CompanyID: actor.CompanyID,
		Name:      strings.TrimSpace(req.Name),
		IsActive:  isActive,
	}

	if err := h.db.Create(&prof).Error; err != nil {
		httperr.Internal(c, "Erro ao criar o profissional.")
		return
	}

	httpresp.Created(c, prof)
}

func (h *ProfessionalHandler) GetByID(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND company_id = ?", id, actor.CompanyID).
		First(&prof).Error; err != nil {
		httperr.NotFound(c, "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, prof)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND company_id = ?", id, actor.CompanyID).
		First(&prof).Error; err != nil {
		httperr.NotFound(c, "Profissional não encontrado.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if req.Name != nil {
		prof.Name = strings.TrimSpace(*req.Name)
	}
	if req.IsActive != nil {
		prof.IsActive = *req.IsActive
	}

	if err := h.db.Save(&prof).Error; err != nil {
		httperr.Internal(c, "Erro ao atualizar o profissional.")
		return
	}

	httpresp.OK(c, prof)
}

// Delete removes a professional and their service links. Forbidden while
// any Scheduled appointment still references them.
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND company_id = ?", id, actor.CompanyID).
		First(&prof).Error; err != nil {
		httperr.NotFound(c, "Profissional não encontrado.")
		return
	}

	var scheduled int64
	h.db.Model(&models.Appointment{}).
		Where("company_id = ? AND professional_id = ? AND status = ?",
			actor.CompanyID, prof.ID, int(scheduling.StatusScheduled)).
		Count(&scheduled)
	if scheduled > 0 {
		httperr.Conflict(c, "Registro possui agendamentos ativos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("professional_id = ?", prof.ID).
			Delete(&models.ProfessionalService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&prof).Error
	})
	if err != nil {
		httperr.Internal(c, "Erro ao remover o profissional.")
		return
	}

	httpresp.NoContent(c)
}
