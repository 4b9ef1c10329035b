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

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=1"`
	Price           *float64 `json:"price"`
	IsActive        *bool    `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	q := h.db.Where("company_id = ?", actor.CompanyID)

	if activeStr := strings.TrimSpace(c.Query("active")); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			q = q.Where("is_active = ?", active)
		}
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "Erro ao listar os serviços.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		httperr.BadRequest(c, "Nome é obrigatório.")
		return
	}
	if req.DurationMinutes <= 0 {
		httperr.BadRequest(c, "Duração deve ser maior que zero.")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	svc := models.Service{
		CompanyID:       actor.CompanyID,
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        isActive,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "Erro ao criar o serviço.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND company_id = ?", id, actor.CompanyID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND company_id = ?", id, actor.CompanyID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		httperr.BadRequest(c, "Duração deve ser maior que zero.")
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		svc.Price = req.Price
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "Erro ao atualizar o serviço.")
		return
	}

	httpresp.OK(c, svc)
}

// Delete removes a service. Forbidden while any Scheduled appointment
// still references it; link rows go in the same transaction.
func (h *ServiceHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND company_id = ?", id, actor.CompanyID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "Serviço não encontrado.")
		return
	}

	var scheduled int64
	h.db.Model(&models.Appointment{}).
		Where("company_id = ? AND service_id = ? AND status = ?",
			actor.CompanyID, svc.ID, int(scheduling.StatusScheduled)).
		Count(&scheduled)
	if scheduled > 0 {
		httperr.Conflict(c, "Registro possui agendamentos ativos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", svc.ID).
			Delete(&models.ProfessionalService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&svc).Error
	})
	if err != nil {
		httperr.Internal(c, "Erro ao remover o serviço.")
		return
	}

	httpresp.NoContent(c)
}
